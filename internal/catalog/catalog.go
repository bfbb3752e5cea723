package catalog

import (
	"sort"
	"strings"

	"kitchenly_back_end/internal/models"
)

// Options de tri acceptées par Search.
const (
	SortPopular   = "popular"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortRating    = "rating"
)

// Catalog est la collection ordonnée et immuable des produits.
// Chargé une fois au démarrage, jamais muté ensuite : lecture sans verrou.
type Catalog struct {
	products   []models.Product
	byID       map[string]models.Product
	categories []models.Category
}

func New(products []models.Product, categories []models.Category) *Catalog {
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{
		products:   products,
		byID:       byID,
		categories: categories,
	}
}

// List retourne tous les produits dans l'ordre du catalogue.
func (c *Catalog) List() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Get(id string) (models.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

func (c *Catalog) Categories() []models.Category {
	out := make([]models.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// ByCategory retourne les produits d'une catégorie (nom ou slug).
func (c *Catalog) ByCategory(name string) []models.Product {
	var out []models.Product
	for _, p := range c.products {
		if strings.EqualFold(p.Category, name) {
			out = append(out, p)
		}
	}
	return out
}

// LimitedTime retourne la sélection "Limited time" de la page d'accueil.
func (c *Catalog) LimitedTime() []models.Product {
	if len(c.products) < 3 {
		return c.List()
	}
	out := make([]models.Product, 3)
	copy(out, c.products[:3])
	return out
}

// Reorder retourne la sélection "Reorder" de la page d'accueil.
func (c *Catalog) Reorder() []models.Product {
	if len(c.products) < 3 {
		return nil
	}
	out := make([]models.Product, len(c.products)-3)
	copy(out, c.products[3:])
	return out
}

// Filter décrit une recherche : texte, catégorie, fourchette de prix, tri.
type Filter struct {
	Query    string
	Category string
	MinPrice *float64
	MaxPrice *float64
	SortBy   string
}

// Search filtre puis trie les produits. Le tri est stable : à clé égale,
// l'ordre du catalogue est conservé.
func (c *Catalog) Search(f Filter) []models.Product {
	var results []models.Product

	queryLower := strings.ToLower(f.Query)
	for _, p := range c.products {
		if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
			continue
		}
		if f.MinPrice != nil && p.PriceValue() < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.PriceValue() > *f.MaxPrice {
			continue
		}
		if queryLower != "" && !strings.Contains(strings.ToLower(p.Name), queryLower) {
			continue
		}
		results = append(results, p)
	}

	switch f.SortBy {
	case SortPriceAsc:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].PriceValue() < results[j].PriceValue()
		})
	case SortPriceDesc:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].PriceValue() > results[j].PriceValue()
		})
	case SortRating:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Rating > results[j].Rating
		})
	default:
		// "popular" = ordre du catalogue
	}

	return results
}
