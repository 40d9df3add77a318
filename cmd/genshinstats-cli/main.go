package main

import (
	"context"

	"genshinstats/cmd/genshinstats-cli/commands"
	"genshinstats/lib/osutil"
	"genshinstats/lib/telemetry"
)

func main() {
	ctx := osutil.SignalContext()

	t, err := telemetry.SetupFromEnv(ctx, "genshinstats-cli")
	if err != nil {
		osutil.Fatal("failed to setup telemetry", err)
	}
	defer t.Shutdown(context.Background())
	telemetry.InstrumentPerfStats(ctx)

	commands.ExecuteContext(ctx)
}
