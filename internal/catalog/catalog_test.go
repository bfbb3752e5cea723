package catalog

import (
	"testing"

	"kitchenly_back_end/internal/models"

	"github.com/stretchr/testify/require"
)

func fixtureCatalog() *Catalog {
	products := []models.Product{
		{ID: "1", Name: "Premium Utensil Set", Price: "49.99", Rating: 4.8, Category: "Cutlery"},
		{ID: "2", Name: "Smart Blender Pro", Price: "89.99", Rating: 4.9, Category: "Blenders"},
		{ID: "3", Name: "Cookware Set", Price: "129.99", Rating: 4.7, Category: "Cookware"},
		{ID: "4", Name: "Ceramic Mug Set", Price: "24.99", Rating: 4.6, Category: "Mugs"},
		{ID: "5", Name: "Dinner Plate Set", Price: "24.99", Rating: 4.6, Category: "Tableware"},
	}
	categories := []models.Category{
		{Name: "Cutlery", Slug: "cutlery"},
		{Name: "Blenders", Slug: "blenders"},
	}
	return New(products, categories)
}

func TestListPreservesCatalogOrder(t *testing.T) {
	c := fixtureCatalog()

	list := c.List()
	require.Len(t, list, 5)
	require.Equal(t, "1", list[0].ID)
	require.Equal(t, "5", list[4].ID)

	// La copie retournée n'expose pas l'état interne
	list[0].Name = "modifié"
	require.Equal(t, "Premium Utensil Set", c.List()[0].Name)
}

func TestGet(t *testing.T) {
	c := fixtureCatalog()

	p, ok := c.Get("2")
	require.True(t, ok)
	require.Equal(t, "Smart Blender Pro", p.Name)

	_, ok = c.Get("inconnu")
	require.False(t, ok)
}

func TestByCategory(t *testing.T) {
	c := fixtureCatalog()

	products := c.ByCategory("Blenders")
	require.Len(t, products, 1)
	require.Equal(t, "2", products[0].ID)

	require.Empty(t, c.ByCategory("Glassware"))
}

func TestSearchPriceRange(t *testing.T) {
	c := fixtureCatalog()

	min, max := 30.0, 100.0
	results := c.Search(Filter{MinPrice: &min, MaxPrice: &max})
	require.Len(t, results, 2)
	require.Equal(t, "1", results[0].ID)
	require.Equal(t, "2", results[1].ID)
}

func TestSearchQueryMatchesName(t *testing.T) {
	c := fixtureCatalog()

	results := c.Search(Filter{Query: "set"})
	require.Len(t, results, 4)

	results = c.Search(Filter{Query: "blender"})
	require.Len(t, results, 1)
	require.Equal(t, "2", results[0].ID)
}

func TestSearchSortPriceAsc(t *testing.T) {
	c := fixtureCatalog()

	results := c.Search(Filter{SortBy: SortPriceAsc})
	require.Equal(t, []string{"4", "5", "1", "2", "3"}, ids(results))
}

func TestSearchSortPriceDesc(t *testing.T) {
	c := fixtureCatalog()

	results := c.Search(Filter{SortBy: SortPriceDesc})
	require.Equal(t, []string{"3", "2", "1", "4", "5"}, ids(results))
}

func TestSortIsStableOnEqualKeys(t *testing.T) {
	c := fixtureCatalog()

	// Les produits 4 et 5 ont le même prix et la même note :
	// l'ordre du catalogue doit être conservé
	byPrice := c.Search(Filter{SortBy: SortPriceAsc})
	require.Equal(t, "4", byPrice[0].ID)
	require.Equal(t, "5", byPrice[1].ID)

	byRating := c.Search(Filter{SortBy: SortRating})
	require.Equal(t, []string{"2", "1", "3", "4", "5"}, ids(byRating))
}

func TestSearchDefaultIsCatalogOrder(t *testing.T) {
	c := fixtureCatalog()

	results := c.Search(Filter{SortBy: SortPopular})
	require.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(results))
}

func TestSeedCatalog(t *testing.T) {
	c := Seed()

	require.Len(t, c.List(), 5)
	require.Len(t, c.Categories(), 6)
	require.Len(t, c.LimitedTime(), 3)
	require.Len(t, c.Reorder(), 2)

	for _, p := range c.List() {
		require.NotEmpty(t, p.ID)
		require.Positive(t, p.PriceValue())
		require.GreaterOrEqual(t, p.Rating, 0.0)
		require.LessOrEqual(t, p.Rating, 5.0)
	}
}

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}
