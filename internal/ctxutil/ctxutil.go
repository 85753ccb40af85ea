package ctxutil

import (
	"context"
	"time"
)

// private key type to avoid collisions
type key int

const (
	keyPrincipalID key = iota
	keyOpName
)

// WithPrincipalID carries the acting staff id for logs/tracing.
func WithPrincipalID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, keyPrincipalID, id)
}

func PrincipalID(ctx context.Context) (int64, bool) {
	v := ctx.Value(keyPrincipalID)
	if v == nil {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// WithOp carries the operation name for logs/tracing.
func WithOp(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, keyOpName, name)
}

func Op(ctx context.Context) (string, bool) {
	v := ctx.Value(keyOpName)
	if v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

var DefaultDBTimeout = 5 * time.Second

// WithTimeout wraps context.WithTimeout; d<=0 means no timeout.
func WithTimeout(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, d)
}

// WithDBTimeout applies the standard store-call timeout, shrinking to the
// parent's remaining deadline when that is shorter.
func WithDBTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	if dl, ok := parent.Deadline(); ok {
		if remain := time.Until(dl); remain < DefaultDBTimeout {
			return context.WithTimeout(parent, remain)
		}
	}
	return context.WithTimeout(parent, DefaultDBTimeout)
}
