package session

import "context"

type ctxKey struct{}

// With returns a context carrying sess. The binding travels with the
// context through every call and goroutine derived from it, so handlers,
// services, and repositories can recover the session without threading it
// as a parameter. Each request gets its own context, which is what keeps
// concurrent requests from ever observing each other's session.
func With(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, sess)
}

// Current returns the session bound by the innermost With on this
// context chain, or nil when called outside any request scope.
func Current(ctx context.Context) *Session {
	sess, _ := ctx.Value(ctxKey{}).(*Session)
	return sess
}

// RunWith binds sess for the dynamic extent of work. Whatever error work
// returns surfaces unchanged; RunWith does scoping only.
func RunWith(ctx context.Context, sess *Session, work func(context.Context) error) error {
	return work(With(ctx, sess))
}
