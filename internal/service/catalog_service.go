package service

import (
	"errors"
	"sort"
	"strings"

	"nextgenmobiles/backend/internal/detect"
	"nextgenmobiles/backend/internal/model"
	"nextgenmobiles/backend/internal/repository"
)

var ErrProductNotFound = errors.New("product not found")

type CatalogService struct {
	products *repository.ProductRepository
}

func NewCatalogService(products *repository.ProductRepository) *CatalogService {
	return &CatalogService{products: products}
}

func (s *CatalogService) Products() []model.Product {
	return s.products.All()
}

func (s *CatalogService) Product(id int) (model.Product, error) {
	product, ok := s.products.ByID(id)
	if !ok {
		return model.Product{}, ErrProductNotFound
	}
	return product, nil
}

// Search returns the full catalog for an empty query. Injection-looking
// queries short-circuit into the detection payload; anything else is a
// case-insensitive substring match against name and brand.
func (s *CatalogService) Search(query string) ([]model.Product, *detect.Result) {
	if query == "" {
		return s.products.All(), nil
	}
	if res := detect.SearchInjection(query); res != nil {
		return nil, res
	}

	q := strings.ToLower(query)
	matched := make([]model.Product, 0)
	for _, p := range s.products.All() {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Brand), q) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// Filter narrows the catalog by each supplied predicate independently.
// Price bounds are inclusive; nil bounds impose no constraint.
func (s *CatalogService) Filter(brand string, minPrice, maxPrice *float64) []model.Product {
	filtered := make([]model.Product, 0)
	for _, p := range s.products.All() {
		if brand != "" && !strings.EqualFold(p.Brand, brand) {
			continue
		}
		if minPrice != nil && p.Price < *minPrice {
			continue
		}
		if maxPrice != nil && p.Price > *maxPrice {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func (s *CatalogService) Brands() []string {
	seen := make(map[string]bool)
	brands := make([]string, 0)
	for _, p := range s.products.All() {
		if !seen[p.Brand] {
			seen[p.Brand] = true
			brands = append(brands, p.Brand)
		}
	}
	sort.Strings(brands)
	return brands
}
