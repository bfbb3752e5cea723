package catalog

import "kitchenly_back_end/internal/models"

// Seed construit le catalogue statique de la boutique.
// Les données sont figées au démarrage : aucune écriture possible ensuite.
func Seed() *Catalog {
	products := []models.Product{
		{
			ID:       "1",
			Image:    "https://images.unsplash.com/photo-1738484708927-c1f45df0b56e?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080",
			Name:     "Premium Utensil Set",
			Price:    "49.99",
			Rating:   4.8,
			Badge:    "NEW",
			Category: "Cutlery",
		},
		{
			ID:       "2",
			Image:    "https://images.unsplash.com/photo-1648392345455-22bd0d2e0c74?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080",
			Name:     "Smart Blender Pro",
			Price:    "89.99",
			Rating:   4.9,
			Badge:    "SALE",
			Category: "Blenders",
		},
		{
			ID:       "3",
			Image:    "https://images.unsplash.com/photo-1612455859448-ecf83d2b7e7f?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080",
			Name:     "Cookware Set",
			Price:    "129.99",
			Rating:   4.7,
			Category: "Cookware",
		},
		{
			ID:       "4",
			Image:    "https://images.unsplash.com/photo-1669329606558-2dc9172d9f33?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080",
			Name:     "Ceramic Mug Set",
			Price:    "24.99",
			Rating:   4.6,
			Category: "Mugs",
		},
		{
			ID:       "5",
			Image:    "https://images.unsplash.com/photo-1712153025601-141bb78cc50c?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080",
			Name:     "Dinner Plate Set",
			Price:    "39.99",
			Rating:   4.5,
			Category: "Tableware",
		},
	}

	categories := []models.Category{
		{Name: "Blenders", Slug: "blenders", Icon: "blend"},
		{Name: "Cookware", Slug: "cookware", Icon: "cooking-pot"},
		{Name: "Tableware", Slug: "tableware", Icon: "utensils-crossed"},
		{Name: "Mugs", Slug: "mugs", Icon: "coffee"},
		{Name: "Cutlery", Slug: "cutlery", Icon: "utensils"},
		{Name: "Glassware", Slug: "glassware", Icon: "wine"},
	}

	return New(products, categories)
}
