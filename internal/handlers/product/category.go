package product

import (
	"net/http"

	"kitchenly_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// GetCategories liste les catégories de la boutique.
func (h *ProductHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.Catalog.Categories()})
}

// GetProductsByCategory retourne les produits d'une catégorie (nom ou slug).
func (h *ProductHandler) GetProductsByCategory(c *gin.Context) {
	name := c.Param("name")

	found := false
	for _, cat := range h.Catalog.Categories() {
		if cat.Name == name || cat.Slug == name {
			name = cat.Name
			found = true
			break
		}
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Catégorie introuvable"})
		return
	}

	products := h.Catalog.ByCategory(name)
	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, gin.H{
		"category": name,
		"products": products,
		"count":    len(products),
	})
}
