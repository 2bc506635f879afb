package storage

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/yourusername/shop-catalog/internal/domain/repository"
)

// liveQuery repository.LiveQuery ning SQLite implementatsiyasi
type liveQuery[T any] struct {
	name    string
	id      string
	tracker *InvalidationTracker
	run     func(ctx context.Context) ([]T, error)

	ctx    context.Context
	cancel context.CancelFunc
	out    chan []T

	scheduled atomic.Bool

	mu     sync.Mutex
	closed bool
	err    error
}

var _ repository.LiveQuery[int] = (*liveQuery[int])(nil)

// newLiveQuery kuzatuvchini ro'yxatdan o'tkazib birinchi so'rovni rejalashtiradi.
// Kuzatuvchi so'rovdan oldin qo'shiladi, shuning uchun oradagi o'zgarish yo'qolmaydi.
func newLiveQuery[T any](ctx context.Context, tracker *InvalidationTracker, name string, tables []string, run func(context.Context) ([]T, error)) (*liveQuery[T], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l := &liveQuery[T]{
		name:    name,
		tracker: tracker,
		run:     run,
		out:     make(chan []T, 1),
	}
	l.ctx, l.cancel = context.WithCancel(ctx)

	id, err := tracker.AddObserver(tables, l.invalidate)
	if err != nil {
		l.cancel()
		return nil, err
	}
	l.id = id

	context.AfterFunc(l.ctx, l.Close)
	l.invalidate()

	zap.L().Debug("live query opened", zap.String("query", name), zap.String("observer", id))
	return l, nil
}

func (l *liveQuery[T]) Updates() <-chan []T {
	return l.out
}

func (l *liveQuery[T]) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

func (l *liveQuery[T]) Close() {
	l.cancel()

	l.mu.Lock()
	defer l.mu.Unlock()
	l.closeLocked()
}

func (l *liveQuery[T]) closeLocked() {
	if l.closed {
		return
	}
	l.closed = true
	l.cancel()
	l.tracker.RemoveObserver(l.id)
	close(l.out)
	zap.L().Debug("live query closed", zap.String("query", l.name), zap.String("observer", l.id))
}

// invalidate bir nechta o'zgarishni bitta refresh ga birlashtiradi.
// Yozuvchi goroutine'da chaqiriladi: pool to'la bo'lsa ham kutmaydi,
// refresh navbatga alohida goroutine orqali qo'yiladi.
func (l *liveQuery[T]) invalidate() {
	if !l.scheduled.CompareAndSwap(false, true) {
		return
	}
	go l.schedule()
}

func (l *liveQuery[T]) schedule() {
	if err := l.tracker.submit(l.refresh); err != nil {
		l.scheduled.Store(false)
		l.fail(err)
	}
}

func (l *liveQuery[T]) fail(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.err = err
	zap.L().Warn("live query failed", zap.String("query", l.name), zap.Error(err))
	l.closeLocked()
}

func (l *liveQuery[T]) refresh() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.scheduled.Store(false)
	if l.closed {
		return
	}

	rows, err := l.run(l.ctx)
	if err != nil {
		if l.ctx.Err() != nil {
			l.closeLocked()
			return
		}
		l.err = err
		zap.L().Warn("live query failed", zap.String("query", l.name), zap.Error(err))
		l.closeLocked()
		return
	}

	// eski natija o'qilmagan bo'lsa uni yangisi bilan almashtiramiz
	select {
	case <-l.out:
	default:
	}
	l.out <- rows
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
