package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/yourusername/shop-catalog/internal/domain/entity"
	"github.com/yourusername/shop-catalog/internal/domain/repository"
)

type memoryProductRepository struct {
	tracker *InvalidationTracker

	mu       sync.RWMutex
	products map[int64]entity.Product // key: product ID
}

// NewMemoryProductRepository in-memory product repository yaratish.
// tracker TableProducts jadvalini bilishi kerak.
func NewMemoryProductRepository(tracker *InvalidationTracker) repository.ProductRepository {
	return &memoryProductRepository{
		tracker:  tracker,
		products: make(map[int64]entity.Product),
	}
}

// InsertAll mahsulotlarni saqlash; bitta noto'g'ri mahsulot butun partiyani bekor qiladi
func (m *memoryProductRepository) InsertAll(ctx context.Context, products []entity.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return err
		}
	}

	m.mu.Lock()
	for _, p := range products {
		m.products[p.ID] = p
	}
	m.mu.Unlock()

	m.tracker.Notify(TableProducts)
	return nil
}

// Insert bitta mahsulotni saqlash
func (m *memoryProductRepository) Insert(ctx context.Context, product entity.Product) error {
	return m.InsertAll(ctx, []entity.Product{product})
}

// Delete mahsulotni o'chirish
func (m *memoryProductRepository) Delete(ctx context.Context, product entity.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	delete(m.products, product.ID)
	m.mu.Unlock()

	m.tracker.Notify(TableProducts)
	return nil
}

// DeleteAll barcha mahsulotlarni o'chirish
func (m *memoryProductRepository) DeleteAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	m.products = make(map[int64]entity.Product)
	m.mu.Unlock()

	m.tracker.Notify(TableProducts)
	return nil
}

func (m *memoryProductRepository) GetAllProducts(ctx context.Context) (repository.LiveQuery[entity.Product], error) {
	return newLiveQuery(ctx, m.tracker, "memory.products.all", []string{TableProducts},
		func(context.Context) ([]entity.Product, error) {
			return m.filter(func(entity.Product) bool { return true }), nil
		})
}

// GetProductByID ID bo'yicha mahsulotni olish
func (m *memoryProductRepository) GetProductByID(ctx context.Context, id int64) (*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	product, exists := m.products[id]
	if !exists {
		return nil, nil
	}
	return &product, nil
}

func (m *memoryProductRepository) GetProductsByCategory(ctx context.Context, categoryID int64) (repository.LiveQuery[entity.Product], error) {
	return newLiveQuery(ctx, m.tracker, "memory.products.by_category", []string{TableProducts},
		func(context.Context) ([]entity.Product, error) {
			return m.filter(func(p entity.Product) bool { return p.CategoryID == categoryID }), nil
		})
}

// filter SQLite bilan bir xil tartibda (ID bo'yicha) qaytaradi
func (m *memoryProductRepository) filter(keep func(entity.Product) bool) []entity.Product {
	m.mu.RLock()
	defer m.mu.RUnlock()

	products := make([]entity.Product, 0, len(m.products))
	for _, product := range m.products {
		if keep(product) {
			products = append(products, product)
		}
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products
}
