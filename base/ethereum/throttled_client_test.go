package ethereum

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// slowUpstream only implements BlockNumber, the embedded nil interface
// panics on anything else
type slowUpstream struct {
	Upstream
	inFlight int32
	peak     int32
	calls    int32
}

func (u *slowUpstream) BlockNumber(ctx context.Context) (uint64, error) {
	atomic.AddInt32(&u.calls, 1)
	n := atomic.AddInt32(&u.inFlight, 1)
	for {
		p := atomic.LoadInt32(&u.peak)
		if n <= p || atomic.CompareAndSwapInt32(&u.peak, p, n) {
			break
		}
	}
	time.Sleep(20 * time.Millisecond)
	atomic.AddInt32(&u.inFlight, -1)
	return 42, nil
}

func TestThrottledClientBoundsConcurrency(t *testing.T) {
	up := &slowUpstream{}
	c := NewThrottledClient(up, 2)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := c.BlockNumber(context.Background())
			require.NoError(t, err)
			require.Equal(t, uint64(42), n)
		}()
	}
	wg.Wait()

	require.Equal(t, int32(8), atomic.LoadInt32(&up.calls))
	require.LessOrEqual(t, atomic.LoadInt32(&up.peak), int32(2))
}

func TestThrottledClientCanceledWait(t *testing.T) {
	up := &slowUpstream{}
	c := NewThrottledClient(up, 1)
	require.NoError(t, c.sem.Acquire(context.Background(), 1))
	defer c.sem.Release(1)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := c.BlockNumber(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Equal(t, int32(0), atomic.LoadInt32(&up.calls))
}
