package codec

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sharetube/roomdecor/internal/domain"
)

// FromQuery decodes the token carried by query. It returns nil when there is no token
// or when the token cannot be decoded, which callers treat as "use defaults".
// Other parameters, such as page, are left alone.
func (c *Codec) FromQuery(ctx context.Context, query url.Values) *domain.RoomState {
	token := query.Get(c.param)
	if token == "" {
		return nil
	}

	state, issues, err := c.Decode(token)
	if err != nil {
		c.logger.WarnContext(ctx, "failed to decode room token", "error", err, "token_length", len(token))
		return nil
	}

	c.logIssues(ctx, issues)
	return state
}

// Hydrate always returns a usable room: the decoded one, or the defaults.
func (c *Codec) Hydrate(ctx context.Context, token string) domain.RoomState {
	if token == "" {
		return domain.NewRoomState()
	}

	state, issues, err := c.Decode(token)
	if err != nil {
		c.logger.WarnContext(ctx, "failed to decode room token", "error", err, "token_length", len(token))
		return domain.NewRoomState()
	}

	c.logIssues(ctx, issues)
	return *state
}

func (c *Codec) logIssues(ctx context.Context, issues []Issue) {
	for _, issue := range issues {
		c.logger.DebugContext(ctx, "room token field ignored", "field", issue.Field, "reason", issue.Err)
	}
}

// ShareURL builds base?page=<page>&<param>=<token>, keeping any query base already has.
func (c *Codec) ShareURL(base string, page domain.Page, token string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("failed to parse base url: %w", err)
	}

	q := u.Query()
	q.Set("page", string(page))
	q.Set(c.param, token)
	u.RawQuery = q.Encode()

	return u.String(), nil
}
