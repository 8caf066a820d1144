package auth

import "context"

type ctxKey string

const (
	ctxKeySub      ctxKey = "sub"
	ctxKeyUsername ctxKey = "username"
)

func WithSubject(ctx context.Context, sub string) context.Context {
	return context.WithValue(ctx, ctxKeySub, sub)
}

func SubjectFromContext(ctx context.Context) string {
	if v := ctx.Value(ctxKeySub); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func WithUsername(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, ctxKeyUsername, name)
}

func UsernameFromContext(ctx context.Context) string {
	if s, ok := ctx.Value(ctxKeyUsername).(string); ok {
		return s
	}
	return ""
}
