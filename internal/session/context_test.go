package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCurrent_OutsideScopeIsNil(t *testing.T) {
	require.Nil(t, Current(context.Background()))
}

func TestRunWith_BindsForDynamicExtent(t *testing.T) {
	sess := New()
	sess.SetUserID("u1")

	err := RunWith(context.Background(), sess, func(ctx context.Context) error {
		require.Same(t, sess, Current(ctx))

		// the binding survives further derived contexts
		derived, cancel := context.WithCancel(ctx)
		defer cancel()
		require.Same(t, sess, Current(derived))
		return nil
	})
	require.NoError(t, err)
}

func TestRunWith_ErrorsSurfaceUnchanged(t *testing.T) {
	boom := errors.New("boom")
	err := RunWith(context.Background(), New(), func(ctx context.Context) error {
		return boom
	})
	require.Same(t, boom, err)
}

func TestRunWith_InnermostBindingWins(t *testing.T) {
	outer, inner := New(), New()

	err := RunWith(context.Background(), outer, func(ctx context.Context) error {
		return RunWith(ctx, inner, func(ctx context.Context) error {
			require.Same(t, inner, Current(ctx))
			return nil
		})
	})
	require.NoError(t, err)
}

// Concurrent bindings must never observe each other's session, even with
// forced interleaving at suspension points.
func TestRunWith_ConcurrentIsolation(t *testing.T) {
	const workers = 32

	// every worker suspends at this barrier mid-flight, guaranteeing all
	// bindings are alive and interleaved at once
	barrier := make(chan struct{})
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sess := New()
			sess.SetUserID(sess.ID)

			err := RunWith(context.Background(), sess, func(ctx context.Context) error {
				<-barrier // suspension point 1
				if got := Current(ctx); got != sess {
					return errors.New("foreign session observed")
				}

				// spawn a continuation on the same chain
				done := make(chan error, 1)
				go func(ctx context.Context) {
					if got := Current(ctx); got != sess {
						done <- errors.New("foreign session observed in continuation")
						return
					}
					done <- nil
				}(ctx)
				return <-done // suspension point 2
			})
			require.NoError(t, err)
		}()
	}

	close(barrier)
	wg.Wait()
}
