package user

import (
	"log"
	"net/http"

	"kitchenly_back_end/internal/catalog"
	"kitchenly_back_end/internal/models"
	"kitchenly_back_end/internal/store"

	"github.com/gin-gonic/gin"
)

type WishlistHandler struct {
	Favorites *store.FavoritesStore
	Catalog   *catalog.Catalog
}

func NewWishlistHandler(favorites *store.FavoritesStore, cat *catalog.Catalog) *WishlistHandler {
	return &WishlistHandler{Favorites: favorites, Catalog: cat}
}

// GetWishlist récupère les favoris de l'utilisateur, dans l'ordre du catalogue.
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	products := []models.Product{}
	for _, p := range h.Catalog.List() {
		if h.Favorites.Contains(userID, p.ID) {
			products = append(products, p)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id": userID,
		"items":   products,
	})
}

// ToggleWishlist inverse l'appartenance d'un produit aux favoris.
func (h *WishlistHandler) ToggleWishlist(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	var req struct {
		ProductID string `json:"product_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if _, ok := h.Catalog.Get(req.ProductID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	favorite := h.Favorites.Toggle(userID, req.ProductID)
	if favorite {
		log.Printf("⭐ Produit %s ajouté aux favoris de %s", req.ProductID, userID)
	} else {
		log.Printf("🗑️ Produit %s retiré des favoris de %s", req.ProductID, userID)
	}

	c.JSON(http.StatusOK, gin.H{
		"product_id": req.ProductID,
		"favorite":   favorite,
	})
}

// RemoveFromWishlist retire un produit des favoris
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	h.Favorites.Remove(userID, c.Param("productId"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit retiré des favoris",
	})
}
