package controller

import "context"

type contextKey int

const (
	sessionCtxKey contextKey = iota
)

func (c controller) getSessionFromCtx(ctx context.Context) *wsSession {
	s, ok := ctx.Value(sessionCtxKey).(*wsSession)
	if !ok {
		return nil
	}

	return s
}

func withSession(ctx context.Context, s *wsSession) context.Context {
	return context.WithValue(ctx, sessionCtxKey, s)
}
