package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/yourusername/shop-catalog/internal/domain/entity"
	"github.com/yourusername/shop-catalog/internal/domain/repository"
)

// ErrProductNotFound mahsulot topilmadi
var ErrProductNotFound = errors.New("product not found")

// CatalogUseCase katalog bilan bog'liq business logic
type CatalogUseCase interface {
	// SeedSampleData baza bo'sh bo'lsa namunaviy katalogni yozadi
	SeedSampleData(ctx context.Context) (bool, error)

	// ImportCatalog Excel fayldan katalogni import qilish
	ImportCatalog(ctx context.Context, filePath string) (*entity.ProductCatalog, error)

	// Search nom yoki tavsif bo'yicha qidirish; categoryID = 0 barcha kategoriyalar
	Search(ctx context.Context, query string, categoryID int64) ([]entity.Product, error)

	// Product ID bo'yicha mahsulot
	Product(ctx context.Context, id int64) (*entity.Product, error)

	// Products barcha yoki bitta kategoriyadagi mahsulotlar
	Products(ctx context.Context, categoryID int64) ([]entity.Product, error)

	// Watch mahsulotlarni jonli kuzatish
	Watch(ctx context.Context, categoryID int64) (repository.LiveQuery[entity.Product], error)

	// DeleteProduct mahsulotni o'chirish
	DeleteProduct(ctx context.Context, id int64) error

	// Clear barcha mahsulotlarni o'chirish
	Clear(ctx context.Context) error

	// ProductsAsText mahsulotlarni kategoriya bo'yicha text formatda olish
	ProductsAsText(ctx context.Context) (string, error)
}

type catalogUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	parser       repository.CatalogParser
}

// NewCatalogUseCase yangi CatalogUseCase yaratish
func NewCatalogUseCase(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, parser repository.CatalogParser) CatalogUseCase {
	return &catalogUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		parser:       parser,
	}
}

func (u *catalogUseCase) SeedSampleData(ctx context.Context) (bool, error) {
	products, err := u.Products(ctx, 0)
	if err != nil {
		return false, err
	}
	if len(products) > 0 {
		return false, nil
	}

	if err := u.categoryRepo.InsertAll(ctx, SampleCategories); err != nil {
		return false, err
	}
	if err := u.productRepo.InsertAll(ctx, SampleProducts); err != nil {
		return false, err
	}

	zap.L().Info("sample catalog seeded",
		zap.Int("categories", len(SampleCategories)),
		zap.Int("products", len(SampleProducts)))
	return true, nil
}

func (u *catalogUseCase) ImportCatalog(ctx context.Context, filePath string) (*entity.ProductCatalog, error) {
	parsed, err := u.parser.ParseProducts(ctx, filePath)
	if err != nil {
		return nil, err
	}

	existing, err := u.Products(ctx, 0)
	if err != nil {
		return nil, err
	}
	assignIDs(parsed, existing)

	// kategoriyalar avval: ular xato bersa mahsulotlar yozilmaydi
	categories, err := u.missingCategories(ctx, parsed)
	if err != nil {
		return nil, err
	}
	if len(categories) > 0 {
		if err := u.categoryRepo.InsertAll(ctx, categories); err != nil {
			return nil, errors.Wrap(err, "import categories")
		}
	}

	if err := u.productRepo.InsertAll(ctx, parsed); err != nil {
		return nil, errors.Wrap(err, "import catalog")
	}

	zap.L().Info("catalog imported",
		zap.String("source", filePath),
		zap.Int("products", len(parsed)),
		zap.Int("new_categories", len(categories)))

	return &entity.ProductCatalog{
		Products:   parsed,
		ImportedAt: time.Now(),
		Source:     filePath,
	}, nil
}

// assignIDs ID siz mahsulotlarga mavjudlardan katta ID beradi
func assignIDs(products, existing []entity.Product) {
	var maxID int64
	for _, p := range existing {
		maxID = max(maxID, p.ID)
	}
	for _, p := range products {
		maxID = max(maxID, p.ID)
	}
	for i := range products {
		if products[i].ID == 0 {
			maxID++
			products[i].ID = maxID
		}
	}
}

func (u *catalogUseCase) missingCategories(ctx context.Context, products []entity.Product) ([]entity.Category, error) {
	seen := make(map[int64]struct{})
	var missing []entity.Category
	for _, p := range products {
		if p.CategoryID == 0 || p.Category == "" {
			continue
		}
		if _, ok := seen[p.CategoryID]; ok {
			continue
		}
		seen[p.CategoryID] = struct{}{}

		category, err := u.categoryRepo.GetCategoryByID(ctx, p.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			missing = append(missing, entity.Category{ID: p.CategoryID, Name: p.Category})
		}
	}
	return missing, nil
}

func (u *catalogUseCase) Search(ctx context.Context, query string, categoryID int64) ([]entity.Product, error) {
	products, err := u.Products(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return products, nil
	}

	results := make([]entity.Product, 0)
	for _, p := range products {
		if matchProduct(p, query) {
			results = append(results, p)
		}
	}
	return results, nil
}

func (u *catalogUseCase) Product(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := u.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.Wrapf(ErrProductNotFound, "id %d", id)
	}
	return product, nil
}

func (u *catalogUseCase) Products(ctx context.Context, categoryID int64) ([]entity.Product, error) {
	lq, err := u.Watch(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return repository.First(ctx, lq)
}

func (u *catalogUseCase) Watch(ctx context.Context, categoryID int64) (repository.LiveQuery[entity.Product], error) {
	if categoryID == 0 {
		return u.productRepo.GetAllProducts(ctx)
	}
	return u.productRepo.GetProductsByCategory(ctx, categoryID)
}

func (u *catalogUseCase) DeleteProduct(ctx context.Context, id int64) error {
	return u.productRepo.Delete(ctx, entity.Product{ID: id})
}

func (u *catalogUseCase) Clear(ctx context.Context) error {
	return u.productRepo.DeleteAll(ctx)
}

func (u *catalogUseCase) ProductsAsText(ctx context.Context) (string, error) {
	products, err := u.Products(ctx, 0)
	if err != nil {
		return "", err
	}
	if len(products) == 0 {
		return "", errors.New("no products available")
	}

	// Kategoriyalar bo'yicha guruhlash
	categoryMap := make(map[string][]entity.Product)
	for _, product := range products {
		category := product.Category
		if category == "" {
			category = "Other"
		}
		categoryMap[category] = append(categoryMap[category], product)
	}

	names := make([]string, 0, len(categoryMap))
	for name := range categoryMap {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, category := range names {
		prods := categoryMap[category]
		sort.Slice(prods, func(i, j int) bool { return prods[i].ID < prods[j].ID })

		sb.WriteString(fmt.Sprintf("%s:\n", category))
		for _, p := range prods {
			sb.WriteString(fmt.Sprintf("  #%d %s - $%.2f", p.ID, p.Name, p.Price))
			if !p.InStock {
				sb.WriteString(" (out of stock)")
			}
			if p.Description != "" {
				sb.WriteString(fmt.Sprintf("\n     %s", p.Description))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
