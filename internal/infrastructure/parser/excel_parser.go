package parser

import (
	"context"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/yourusername/shop-catalog/internal/domain/entity"
	"github.com/yourusername/shop-catalog/internal/domain/repository"
)

// ErrNoProducts faylda yaroqli mahsulot topilmadi
var ErrNoProducts = errors.New("no valid products found in excel file")

// Ustun kalitlari
const (
	colID             = "id"
	colName           = "name"
	colDescription    = "description"
	colPrice          = "price"
	colImage          = "image"
	colCategory       = "category"
	colCategoryID     = "category_id"
	colDetails        = "details"
	colSpecifications = "specifications"
	colInStock        = "in_stock"
)

type excelParser struct{}

// NewExcelParser yangi Excel parser yaratish
func NewExcelParser() repository.CatalogParser {
	return &excelParser{}
}

// ParseProducts Excel fayldan mahsulotlarni o'qish
func (e *excelParser) ParseProducts(ctx context.Context, filePath string) ([]entity.Product, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open excel file")
	}
	defer f.Close()

	return e.parseExcelFile(ctx, f)
}

// ParseProductsFrom reader dan parse qilish (masalan yuklangan fayl)
func (e *excelParser) ParseProductsFrom(ctx context.Context, r io.Reader, source string) ([]entity.Product, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open excel %s", source)
	}
	defer f.Close()

	return e.parseExcelFile(ctx, f)
}

// parseExcelFile birinchi sheet ni header bo'yicha o'qish
func (e *excelParser) parseExcelFile(ctx context.Context, f *excelize.File) ([]entity.Product, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("excel file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrap(err, "failed to get rows")
	}
	if len(rows) < 2 {
		return nil, ErrNoProducts
	}

	columns := mapColumns(rows[0])
	zap.L().Debug("excel column mapping", zap.String("sheet", sheets[0]), zap.Any("columns", columns))

	nameCol, hasName := columns[colName]
	priceCol, hasPrice := columns[colPrice]
	if !hasName || !hasPrice {
		return nil, errors.Errorf("excel header must contain name and price columns, got %v", rows[0])
	}

	var products []entity.Product
	for i := 1; i < len(rows); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		name := cell(row, nameCol)
		if name == "" {
			continue
		}

		price, err := parsePrice(cell(row, priceCol))
		if err != nil {
			zap.L().Warn("skipping excel row with invalid price",
				zap.Int("row", i+1), zap.String("name", name), zap.Error(err))
			continue
		}

		product := entity.Product{
			Name:    name,
			Price:   price,
			InStock: true,
		}

		if idx, ok := columns[colID]; ok {
			if raw := cell(row, idx); raw != "" {
				id, err := strconv.ParseInt(raw, 10, 64)
				if err != nil {
					zap.L().Warn("skipping excel row with invalid id", zap.Int("row", i+1), zap.String("id", raw))
					continue
				}
				product.ID = id
			}
		}
		if idx, ok := columns[colCategoryID]; ok {
			if raw := cell(row, idx); raw != "" {
				categoryID, err := strconv.ParseInt(raw, 10, 64)
				if err != nil {
					zap.L().Warn("invalid category id", zap.Int("row", i+1), zap.String("category_id", raw))
				} else {
					product.CategoryID = categoryID
				}
			}
		}
		if idx, ok := columns[colInStock]; ok {
			if raw := cell(row, idx); raw != "" {
				product.InStock = parseInStock(raw)
			}
		}

		product.Description = optionalCell(row, columns, colDescription)
		product.ImageURL = optionalCell(row, columns, colImage)
		product.Category = optionalCell(row, columns, colCategory)
		product.Details = optionalCell(row, columns, colDetails)
		product.Specifications = optionalCell(row, columns, colSpecifications)

		products = append(products, product)
	}

	zap.L().Info("excel catalog parsed", zap.Int("rows", len(rows)-1), zap.Int("products", len(products)))

	if len(products) == 0 {
		return nil, errors.Wrapf(ErrNoProducts, "parsed %d rows, but all were invalid", len(rows)-1)
	}
	return products, nil
}

// mapColumns header qatoridan column mapping yaratish.
// Aniqroq nomlar birinchi tekshiriladi ("category id" -> category_id, "category" emas).
func mapColumns(header []string) map[string]int {
	columns := make(map[string]int)

	for i, raw := range header {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" {
			continue
		}

		var key string
		switch {
		case containsAny(name, "category id", "categoryid", "category_id", "kategoriya id"):
			key = colCategoryID
		case name == "id" || containsAny(name, "product id", "sku"):
			key = colID
		case containsAny(name, "in stock", "instock", "in_stock", "available", "mavjud", "stock"):
			key = colInStock
		case containsAny(name, "image", "img", "rasm", "photo"):
			key = colImage
		case containsAny(name, "specification", "specs", "xususiyat"):
			key = colSpecifications
		case containsAny(name, "details", "batafsil"):
			key = colDetails
		case containsAny(name, "description", "tavsif", "описание"):
			key = colDescription
		case containsAny(name, "category", "kategoriya", "категория"):
			key = colCategory
		case containsAny(name, "price", "narx", "цена", "cost"):
			key = colPrice
		case containsAny(name, "name", "nom", "название", "product", "mahsulot"):
			key = colName
		default:
			continue
		}

		if _, taken := columns[key]; !taken {
			columns[key] = i
		}
	}
	return columns
}

func containsAny(s string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func optionalCell(row []string, columns map[string]int, key string) string {
	idx, ok := columns[key]
	if !ok {
		return ""
	}
	return cell(row, idx)
}

// isEmptyRow qator bo'sh yoki yo'qligini tekshirish
func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

var currencyTokens = []string{"$", "€", "£", "₽", "¥", "so'm", "soʻm", "uzs", "usd", "eur", "руб"}

// parsePrice narxni parse qilish ("$1,299.50", "120 usd")
func parsePrice(raw string) (float64, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return 0, errors.New("empty price")
	}

	for _, token := range currencyTokens {
		s = strings.ReplaceAll(s, token, "")
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")

	price, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Errorf("invalid price format: %s", raw)
	}
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, errors.Errorf("invalid price format: %s", raw)
	}
	if price < 0 {
		return 0, errors.Errorf("negative price: %s", raw)
	}
	return price, nil
}

func parseInStock(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "0", "no", "false", "yo'q", "нет", "out":
		return false
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return n > 0
	}
	return true
}
