package mihoyo

// a hoyolab community member as returned by the search and
// getUserFullInfo endpoints
type CommunityUser struct {
	UID       string `json:"uid"`
	Nickname  string `json:"nickname"`
	Introduce string `json:"introduce"`
	AvatarURL string `json:"avatar_url"`
	Gender    int    `json:"gender"`
}

type SearchResult struct {
	Users []CommunityUser `json:"users"`
}

// a game record card, the per-server stat summary shown on a
// community profile. GameRoleID is the game uid for that server.
type RecordCard struct {
	GameRoleID string            `json:"game_role_id"`
	Nickname   string            `json:"nickname"`
	Region     string            `json:"region"`
	RegionName string            `json:"region_name"`
	Level      int               `json:"level"`
	IsPublic   bool              `json:"is_public"`
	Data       []RecordCardEntry `json:"data"`
}

type RecordCardEntry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type Role struct {
	Nickname  string `json:"nickname"`
	Region    string `json:"region"`
	AvatarURL string `json:"AvatarUrl"`
	Level     int    `json:"level"`
}

type Avatar struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Element string `json:"element"`
	Rarity  int    `json:"rarity"`
	Level   int    `json:"level"`
	// friendship level
	Fetter int    `json:"fetter"`
	Image  string `json:"image"`
}

type Stats struct {
	ActiveDays        int    `json:"active_day_number"`
	Achievements      int    `json:"achievement_number"`
	Avatars           int    `json:"avatar_number"`
	Anemoculi         int    `json:"anemoculus_number"`
	Geoculi           int    `json:"geoculus_number"`
	CommonChests      int    `json:"common_chest_number"`
	ExquisiteChests   int    `json:"exquisite_chest_number"`
	PreciousChests    int    `json:"precious_chest_number"`
	LuxuriousChests   int    `json:"luxurious_chest_number"`
	UnlockedWaypoints int    `json:"way_point_number"`
	UnlockedDomains   int    `json:"domain_number"`
	SpiralAbyss       string `json:"spiral_abyss"`
}

type Exploration struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Level      int    `json:"level"`
	Percentage int    `json:"exploration_percentage"`
	Icon       string `json:"icon"`
}

// the game_record index payload: general stats, owned characters and
// world exploration progress for one uid
type UserStats struct {
	Role         Role          `json:"role"`
	Avatars      []Avatar      `json:"avatars"`
	Stats        Stats         `json:"stats"`
	Explorations []Exploration `json:"world_explorations"`
}

// spiral abyss progress for one season. seasons rotate twice a month,
// the previous one stays queryable via schedule type 2.
type SpiralAbyss struct {
	ScheduleID   int    `json:"schedule_id"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	TotalBattles int    `json:"total_battle_times"`
	TotalWins    int    `json:"total_win_times"`
	MaxFloor     string `json:"max_floor"`
	TotalStars   int    `json:"total_star"`
	IsUnlock     bool   `json:"is_unlock"`
}
