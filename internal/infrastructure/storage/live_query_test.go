package storage

import (
	"context"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/shop-catalog/internal/domain/repository"
)

func TestLiveQuery_EmitsOnEveryInvalidation(t *testing.T) {
	tracker, err := NewInvalidationTracker(2, "t")
	require.NoError(t, err)
	defer tracker.Close()

	var runs atomic.Int32
	lq, err := newLiveQuery(context.Background(), tracker, "counter", []string{"t"},
		func(context.Context) ([]int32, error) {
			return []int32{runs.Add(1)}, nil
		})
	require.NoError(t, err)
	defer lq.Close()

	first := waitFor(t, lq, hasLen[int32](1))
	assert.Equal(t, int32(1), first[0])

	tracker.Notify("t")
	waitFor(t, lq, func(rows []int32) bool { return rows[0] >= 2 })
}

func TestLiveQuery_CloseStopsUpdates(t *testing.T) {
	tracker, err := NewInvalidationTracker(1, "t")
	require.NoError(t, err)
	defer tracker.Close()

	lq, err := newLiveQuery(context.Background(), tracker, "empty", []string{"t"},
		func(context.Context) ([]string, error) { return []string{}, nil })
	require.NoError(t, err)

	waitFor(t, lq, hasLen[string](0))
	lq.Close()
	lq.Close()

	_, open := <-lq.Updates()
	assert.False(t, open)
	assert.NoError(t, lq.Err())
	assert.Equal(t, 0, tracker.ObserverCount())

	// yopilgandan keyin xabar e'tiborsiz qoldiriladi
	tracker.Notify("t")
}

func TestLiveQuery_ContextCancelCloses(t *testing.T) {
	tracker, err := NewInvalidationTracker(1, "t")
	require.NoError(t, err)
	defer tracker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	lq, err := newLiveQuery(ctx, tracker, "empty", []string{"t"},
		func(context.Context) ([]string, error) { return nil, nil })
	require.NoError(t, err)

	cancel()

	deadline := time.After(updateTimeout)
	for {
		select {
		case _, open := <-lq.Updates():
			if !open {
				assert.Eventually(t, func() bool { return tracker.ObserverCount() == 0 }, updateTimeout, 10*time.Millisecond)
				return
			}
		case <-deadline:
			t.Fatal("live query not closed after cancel")
		}
	}
}

func TestLiveQuery_QueryErrorClosesWithErr(t *testing.T) {
	tracker, err := NewInvalidationTracker(1, "t")
	require.NoError(t, err)
	defer tracker.Close()

	boom := errors.New("disk I/O error")
	lq, err := newLiveQuery(context.Background(), tracker, "broken", []string{"t"},
		func(context.Context) ([]string, error) { return nil, boom })
	require.NoError(t, err)

	rows, err := repository.First(context.Background(), repository.LiveQuery[string](lq))
	assert.Nil(t, rows)
	assert.ErrorIs(t, err, boom)
}

func TestLiveQuery_CancelledContextRejected(t *testing.T) {
	tracker, err := NewInvalidationTracker(1, "t")
	require.NoError(t, err)
	defer tracker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = newLiveQuery(ctx, tracker, "never", []string{"t"},
		func(context.Context) ([]string, error) { return nil, nil })
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, tracker.ObserverCount())
}

func TestLiveQuery_UnknownTable(t *testing.T) {
	tracker, err := NewInvalidationTracker(1, "t")
	require.NoError(t, err)
	defer tracker.Close()

	_, err = newLiveQuery(context.Background(), tracker, "bad", []string{"x"},
		func(context.Context) ([]string, error) { return nil, nil })
	assert.ErrorIs(t, err, ErrUnknownTable)
}

func TestLiveQuery_SlowConsumerGetsLatestResult(t *testing.T) {
	tracker, err := NewInvalidationTracker(2, "t")
	require.NoError(t, err)
	defer tracker.Close()

	var runs atomic.Int32
	lq, err := newLiveQuery(context.Background(), tracker, "counter", []string{"t"},
		func(context.Context) ([]int32, error) {
			return []int32{runs.Add(1)}, nil
		})
	require.NoError(t, err)
	defer lq.Close()

	settled := func() bool {
		if lq.scheduled.Load() {
			return false
		}
		// ishlayotgan refresh tugashini kutish
		lq.mu.Lock()
		defer lq.mu.Unlock()
		return !lq.scheduled.Load()
	}

	require.Eventually(t, func() bool { return runs.Load() == 1 && settled() }, updateTimeout, time.Millisecond)

	for i := 0; i < 10; i++ {
		tracker.Notify("t")
		time.Sleep(time.Millisecond)
	}
	require.Eventually(t, settled, updateTimeout, time.Millisecond)

	last := runs.Load()
	require.GreaterOrEqual(t, last, int32(2))

	select {
	case rows := <-lq.Updates():
		assert.Equal(t, []int32{last}, rows)
	default:
		t.Fatal("no result buffered")
	}

	select {
	case rows := <-lq.Updates():
		t.Fatalf("stale result still buffered: %v", rows)
	default:
	}
}

func TestLiveQuery_WritesDoNotWaitForRefreshes(t *testing.T) {
	db, err := Open(context.Background(), Options{
		Path:    filepath.Join(t.TempDir(), "shop.db"),
		Workers: 1,
	})
	require.NoError(t, err)
	defer db.Close()

	slow := func(ctx context.Context) ([]int, error) {
		select {
		case <-time.After(200 * time.Millisecond):
			return []int{}, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	for i := 0; i < 5; i++ {
		lq, err := newLiveQuery(context.Background(), db.Tracker(), "slow", []string{TableProducts}, slow)
		require.NoError(t, err)
		defer lq.Close()
	}

	repo := NewSQLiteProductRepository(db)
	start := time.Now()
	for i := int64(1); i <= 10; i++ {
		require.NoError(t, repo.Insert(context.Background(), testProduct(i, 1, "p")))
	}
	assert.Less(t, time.Since(start), time.Second)
}
