package mihoyo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type authKind int

const (
	authNone authKind = iota
	// account_id/cookie_token request cookies plus a fresh ds header
	authCookie
	// authkey carried as a query parameter
	authAuthkey
)

// the fixed response envelope every endpoint wraps its payload in.
// retcode zero means data is present and trustworthy, any other value
// means data must be ignored regardless of its literal content.
type envelope struct {
	Retcode int             `json:"retcode"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// fetchEndpoint issues a GET against base+path with the query and the
// credentials the auth kind calls for. missing credentials fail before
// any network i/o. the decoded data payload is returned untouched for
// the per-endpoint accessors to unmarshal.
func (c *Client) fetchEndpoint(ctx context.Context, base, path string, query url.Values, auth authKind) (json.RawMessage, error) {
	ctx, span := tracer.Start(ctx, "fetch:"+path)
	defer span.End()
	span.SetAttributes(attribute.String("path", path))

	req := c.http.R().SetContext(ctx)
	if query != nil {
		req.SetQueryParamsFromValues(query)
	}

	switch auth {
	case authCookie:
		accountID, cookieToken, err := c.cookie()
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		ds, err := dsToken()
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to create ds token")
			return nil, err
		}
		req.SetCookies([]*http.Cookie{
			{Name: "account_id", Value: accountID},
			{Name: "cookie_token", Value: cookieToken},
		})
		req.SetHeader("ds", ds)
	case authAuthkey:
		authkey, err := c.getAuthkey()
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		req.SetQueryParams(map[string]string{
			"authkey":     authkey,
			"authkey_ver": "1",
			"sign_type":   "2",
		})
	}

	res, err := req.Get(base + path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	if res.IsError() {
		span.SetStatus(codes.Error, res.Status())
		return nil, fmt.Errorf("fetch %s: %w: unexpected status %s", path, ErrInvalidResponse, res.Status())
	}

	var env envelope
	if err := json.Unmarshal(res.Body(), &env); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "malformed response body")
		return nil, fmt.Errorf("fetch %s: %w: %v", path, ErrInvalidResponse, err)
	}

	if env.Retcode != 0 {
		uerr := &UpstreamError{Code: env.Retcode, Message: env.Message}
		span.SetStatus(codes.Error, uerr.Error())
		return nil, uerr
	}
	return env.Data, nil
}

// FetchGachaEndpoint issues an authkey-authenticated GET against the
// gacha-log api. it is exported for the gachalog package which builds
// the pagination loop on top of it.
func (c *Client) FetchGachaEndpoint(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return c.fetchEndpoint(ctx, c.gachaBase, path, query, authAuthkey)
}
