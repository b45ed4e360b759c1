//go:build unix

package gzdoom

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireLockTimesOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".gzlaunch.lock")
	release, err := acquireLock(context.Background(), path, time.Second)
	require.NoError(t, err)
	defer release()

	start := time.Now()
	_, err = acquireLock(context.Background(), path, 100*time.Millisecond)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond)
}

func TestAcquireLockCanceled(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".gzlaunch.lock")
	release, err := acquireLock(context.Background(), path, time.Second)
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = acquireLock(ctx, path, time.Minute)
	require.ErrorIs(t, err, context.Canceled)
}

func TestAcquireLockAfterRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".gzlaunch.lock")
	release, err := acquireLock(context.Background(), path, time.Second)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		second, err := acquireLock(context.Background(), path, 5*time.Second)
		if err == nil {
			second()
		}
		done <- err
	}()
	time.Sleep(50 * time.Millisecond)
	release()
	require.NoError(t, <-done)
}

func TestGenerateWaitsOnLock(t *testing.T) {
	g := newTestGenerator(t)
	g.LockTimeout = 100 * time.Millisecond
	require.NoError(t, g.Layout.EnsureDirs())
	release, err := acquireLock(context.Background(), g.Layout.Lock, time.Second)
	require.NoError(t, err)
	defer release()

	_, err = g.Generate(context.Background(), Request{ROM: "/roms/doom/doom.wad", Resolution: hd})
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NoFileExists(t, g.Layout.INI)
}
