package product

import (
	"net/http"

	"kitchenly_back_end/internal/catalog"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	Catalog *catalog.Catalog
}

func NewProductHandler(cat *catalog.Catalog) *ProductHandler {
	return &ProductHandler{Catalog: cat}
}

// GetProducts liste le catalogue. ?section=limited|reorder retourne les
// sélections de la page d'accueil.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	switch c.Query("section") {
	case "limited":
		c.JSON(http.StatusOK, gin.H{
			"title":    "Limited Time Offers",
			"subtitle": "Special offers ending soon",
			"products": h.Catalog.LimitedTime(),
		})
	case "reorder":
		c.JSON(http.StatusOK, gin.H{
			"title":    "Reorder Products",
			"subtitle": "Buy again from your orders",
			"products": h.Catalog.Reorder(),
		})
	default:
		c.JSON(http.StatusOK, gin.H{"products": h.Catalog.List()})
	}
}

// GetProductByID retourne la fiche d'un produit.
func (h *ProductHandler) GetProductByID(c *gin.Context) {
	p, ok := h.Catalog.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	c.JSON(http.StatusOK, p)
}
