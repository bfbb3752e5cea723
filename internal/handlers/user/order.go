package user

import (
	"log"
	"net/http"
	"time"

	"kitchenly_back_end/internal/store"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

type OrderHandler struct {
	Orders *store.OrderStore
}

func NewOrderHandler(orders *store.OrderStore) *OrderHandler {
	return &OrderHandler{Orders: orders}
}

// ✅ Récupère toutes les commandes de l'utilisateur connecté
func (h *OrderHandler) GetMyOrders(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	orders := h.Orders.ListByUser(userID)
	log.Printf("✅ %d commandes trouvées pour user %s", len(orders), userID)

	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
	})
}

// ✅ Récupère une commande spécifique par ID ou référence
func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	order, ok := h.Orders.Get(userID, c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}

	c.JSON(http.StatusOK, order)
}

// 📦 GET /api/orders/:id/tracking — timeline de suivi simulée
func (h *OrderHandler) GetOrderTracking(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	order, ok := h.Orders.Get(userID, c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order_id":  order.ID,
		"reference": order.Reference,
		"steps":     store.TrackingSteps(order, time.Now()),
	})
}

// 📱 GET /api/orders/:id/qrcode — QR code de la référence de suivi
func (h *OrderHandler) GetOrderQRCode(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	order, ok := h.Orders.Get(userID, c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}

	png, err := qrcode.Encode(order.Reference, qrcode.Medium, 256)
	if err != nil {
		log.Printf("❌ Erreur génération QR code: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération QR code"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
