package user

import (
	"math"
	"net/http"

	"kitchenly_back_end/internal/catalog"
	"kitchenly_back_end/internal/models"
	"kitchenly_back_end/internal/notify"
	"kitchenly_back_end/internal/store"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	Carts   *store.CartStore
	Catalog *catalog.Catalog
	Hub     *notify.Hub
}

func NewCartHandler(carts *store.CartStore, cat *catalog.Catalog, hub *notify.Hub) *CartHandler {
	return &CartHandler{Carts: carts, Catalog: cat, Hub: hub}
}

//
// 🟢 GET /api/cart
//
func (h *CartHandler) GetCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	items := h.Carts.Items(userID)
	if items == nil {
		items = []models.CartItem{} // panier vide
	}

	c.JSON(http.StatusOK, cartResponse(items))
}

//
// 🟢 POST /api/cart/add
//
func (h *CartHandler) AddToCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	var input struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if input.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité invalide"})
		return
	}

	product, ok := h.Catalog.Get(input.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	items := h.Carts.AddItem(userID, product, input.Quantity)
	h.Hub.Publish(userID, notify.EventCartUpdated)

	resp := cartResponse(items)
	resp["message"] = "Produit ajouté au panier"
	c.JSON(http.StatusOK, resp)
}

//
// 🔁 PUT /api/cart/:productId
//
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	var input struct {
		Quantity int `json:"quantity"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	// Quantité < 1 ramenée à 1 par le store, jamais de suppression implicite
	items := h.Carts.UpdateQuantity(userID, c.Param("productId"), input.Quantity)
	h.Hub.Publish(userID, notify.EventCartUpdated)

	c.JSON(http.StatusOK, cartResponse(items))
}

//
// ❌ DELETE /api/cart/:productId
//
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	items := h.Carts.RemoveItem(userID, c.Param("productId"))
	h.Hub.Publish(userID, notify.EventCartUpdated)

	resp := cartResponse(items)
	resp["message"] = "Produit supprimé du panier"
	c.JSON(http.StatusOK, resp)
}

//
// 🧹 DELETE /api/cart/clear
//
func (h *CartHandler) ClearCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	h.Carts.Clear(userID)
	h.Hub.Publish(userID, notify.EventCartCleared)

	c.JSON(http.StatusOK, gin.H{
		"message": "Panier vidé avec succès",
	})
}

// cartResponse assemble lignes, montants et progression vers la livraison
// offerte — recalculés à chaque lecture.
func cartResponse(items []models.CartItem) gin.H {
	if items == nil {
		items = []models.CartItem{}
	}
	totals := store.ComputeTotals(items)

	remaining := math.Max(0, store.FreeShippingThreshold-totals.Subtotal)

	return gin.H{
		"items":                       items,
		"count":                       len(items),
		"totals":                      totals,
		"remaining_for_free_shipping": remaining,
	}
}
