package storage

import (
	"sync"

	"github.com/asaskevich/EventBus"
	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	// ErrUnknownTable kuzatilmaydigan jadval
	ErrUnknownTable = errors.New("unknown table")
	// ErrClosed tracker yopilgan
	ErrClosed = errors.New("invalidation tracker closed")
)

const topicPrefix = "table:"

type observer struct {
	tables        map[string]struct{}
	onInvalidated func()
}

// InvalidationTracker jadval o'zgarishlarini kuzatuvchilarga yetkazadi.
// Har bir jadval EventBus dagi alohida topic; jonli so'rovlarni qayta
// bajarish ants pool ichida ishlaydi.
type InvalidationTracker struct {
	bus    EventBus.Bus
	pool   *ants.Pool
	tables map[string]struct{}

	mu        sync.RWMutex
	observers map[string]*observer
	closed    bool
}

// NewInvalidationTracker berilgan jadvallar uchun tracker yaratish
func NewInvalidationTracker(workers int, tables ...string) (*InvalidationTracker, error) {
	pool, err := ants.NewPool(workers, ants.WithPanicHandler(func(p interface{}) {
		zap.L().Error("live query refresh panicked", zap.Any("panic", p))
	}))
	if err != nil {
		return nil, errors.Wrap(err, "create refresh pool")
	}

	t := &InvalidationTracker{
		bus:       EventBus.New(),
		pool:      pool,
		tables:    make(map[string]struct{}, len(tables)),
		observers: make(map[string]*observer),
	}

	for _, table := range tables {
		t.tables[table] = struct{}{}
		if err := t.bus.Subscribe(topicPrefix+table, t.dispatch); err != nil {
			pool.Release()
			return nil, errors.Wrapf(err, "subscribe table %s", table)
		}
	}
	return t, nil
}

// AddObserver tables dan biri o'zgarganda onInvalidated chaqiriladi.
// onInvalidated bloklamasligi kerak.
func (t *InvalidationTracker) AddObserver(tables []string, onInvalidated func()) (string, error) {
	set := make(map[string]struct{}, len(tables))
	for _, table := range tables {
		if _, ok := t.tables[table]; !ok {
			return "", errors.Wrap(ErrUnknownTable, table)
		}
		set[table] = struct{}{}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return "", ErrClosed
	}

	id := uuid.NewString()
	t.observers[id] = &observer{tables: set, onInvalidated: onInvalidated}
	return id, nil
}

// RemoveObserver kuzatuvchini o'chirish
func (t *InvalidationTracker) RemoveObserver(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.observers, id)
}

// ObserverCount faol kuzatuvchilar soni
func (t *InvalidationTracker) ObserverCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.observers)
}

// Notify jadvallar o'zgarganini e'lon qilish
func (t *InvalidationTracker) Notify(tables ...string) {
	seen := make(map[string]struct{}, len(tables))
	for _, table := range tables {
		if _, dup := seen[table]; dup {
			continue
		}
		seen[table] = struct{}{}
		if _, ok := t.tables[table]; !ok {
			zap.L().Warn("notify for unknown table", zap.String("table", table))
			continue
		}
		t.bus.Publish(topicPrefix+table, table)
	}
}

// dispatch EventBus lock ostida chaqiriladi, shuning uchun callback'lar
// tracker lock'isiz ishlaydi.
func (t *InvalidationTracker) dispatch(table string) {
	t.mu.RLock()
	callbacks := make([]func(), 0, len(t.observers))
	for _, o := range t.observers {
		if _, ok := o.tables[table]; ok {
			callbacks = append(callbacks, o.onInvalidated)
		}
	}
	t.mu.RUnlock()

	for _, cb := range callbacks {
		cb()
	}
}

func (t *InvalidationTracker) submit(task func()) error {
	t.mu.RLock()
	closed := t.closed
	t.mu.RUnlock()
	if closed {
		return ErrClosed
	}
	return t.pool.Submit(task)
}

// Close pool ni bo'shatish; keyingi kuzatuvchilar ErrClosed oladi
func (t *InvalidationTracker) Close() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.closed = true
	t.mu.Unlock()

	for _, table := range sortedKeys(t.tables) {
		if err := t.bus.Unsubscribe(topicPrefix+table, t.dispatch); err != nil {
			zap.L().Debug("unsubscribe table", zap.String("table", table), zap.Error(err))
		}
	}
	t.pool.Release()
}
