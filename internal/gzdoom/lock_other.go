//go:build !unix

package gzdoom

import (
	"context"
	"time"
)

// Launches are serialized by the frontend on these platforms.
func acquireLock(_ context.Context, _ string, _ time.Duration) (func(), error) {
	return func() {}, nil
}
