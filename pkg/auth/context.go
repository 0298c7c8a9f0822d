package auth

import "context"

type contextKey string

const emailContextKey contextKey = "admin_email"

// NewContext returns ctx carrying the authenticated admin email.
func NewContext(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailContextKey, email)
}

// EmailFromContext extracts the authenticated admin email, if any.
func EmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailContextKey).(string)
	return email, ok
}
