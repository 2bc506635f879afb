package usecase

import (
	"strings"

	"github.com/yourusername/shop-catalog/internal/domain/entity"
)

// matchProduct so'rov nom yoki tavsifga mos kelishini tekshiradi:
// to'liq qator, barcha tokenlar yoki probelsiz shakl ("hydra brush" -> "HydraBrush")
func matchProduct(p entity.Product, query string) bool {
	nameLower := strings.ToLower(p.Name)
	descLower := strings.ToLower(p.Description)
	if strings.Contains(nameLower, query) || strings.Contains(descLower, query) {
		return true
	}

	if tokens := queryTokens(query); len(tokens) > 1 && matchAllTokens(tokens, nameLower, descLower) {
		return true
	}

	compactQuery := normalizeAlphaNum(query)
	return len(compactQuery) >= 3 && strings.Contains(normalizeAlphaNum(p.Name), compactQuery)
}

func queryTokens(q string) []string {
	separators := []string{",", ".", "?", "!", ";", ":", "/", "\\", "-", "_"}
	for _, sep := range separators {
		q = strings.ReplaceAll(q, sep, " ")
	}

	var tokens []string
	for _, f := range strings.Fields(q) {
		if len(f) >= 2 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func matchAllTokens(tokens []string, parts ...string) bool {
	for _, t := range tokens {
		found := false
		for _, p := range parts {
			if strings.Contains(p, t) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func normalizeAlphaNum(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
