package devicemanagement

import "context"

type principalContextKey struct{ name string }

var principalCtxKey = &principalContextKey{"principal"}

// WithPrincipal stores the authenticated caller's name in the context so
// that mutations can stamp lastModified with the acting user.
func WithPrincipal(ctx context.Context, user string) context.Context {
	return context.WithValue(ctx, principalCtxKey, user)
}

func PrincipalFromContext(ctx context.Context) string {
	user, ok := ctx.Value(principalCtxKey).(string)
	if !ok || user == "" {
		return "anonymous"
	}
	return user
}
