package pa

import (
	"errors"
	"net/http"

	"kitchenly_back_end/internal/checkout"
	"kitchenly_back_end/internal/models"
	"kitchenly_back_end/internal/store"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	Flow  *checkout.Flow
	Carts *store.CartStore
}

func NewCheckoutHandler(flow *checkout.Flow, carts *store.CartStore) *CheckoutHandler {
	return &CheckoutHandler{Flow: flow, Carts: carts}
}

// GetCheckout retourne la session de checkout : panier, montants, listes
// candidates et sélection courante.
func (h *CheckoutHandler) GetCheckout(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	items := h.Carts.Items(userID)
	if items == nil {
		items = []models.CartItem{}
	}
	addressIndex, paymentIndex := h.Flow.Selection(userID)

	c.JSON(http.StatusOK, gin.H{
		"state":            h.Flow.State(userID),
		"items":            items,
		"totals":           store.ComputeTotals(items),
		"addresses":        h.Flow.Addresses(),
		"payment_methods":  h.Flow.PaymentMethods(),
		"selected_address": addressIndex,
		"selected_payment": paymentIndex,
	})
}

// SelectOptions enregistre l'adresse et le moyen de paiement choisis.
func (h *CheckoutHandler) SelectOptions(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	var req struct {
		AddressID int `json:"address_id"`
		PaymentID int `json:"payment_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if err := h.Flow.Select(userID, req.AddressID, req.PaymentID); err != nil {
		switch {
		case errors.Is(err, checkout.ErrInvalidSelection):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Sélection invalide"})
		default:
			c.JSON(http.StatusConflict, gin.H{"error": "Commande déjà en cours"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sélection enregistrée"})
}

// PlaceOrder démarre le traitement simulé de la commande. Un second appel
// pendant le traitement est ignoré.
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	order, err := h.Flow.PlaceOrder(userID)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Panier vide"})
		case errors.Is(err, checkout.ErrAlreadyProcessing):
			c.JSON(http.StatusConflict, gin.H{"error": "Commande déjà en cours"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur traitement commande"})
		}
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message":   "Commande en cours de traitement",
		"order_id":  order.ID,
		"reference": order.Reference,
		"state":     h.Flow.State(userID),
	})
}

// GetState retourne l'état courant du parcours de commande.
func (h *CheckoutHandler) GetState(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"state": h.Flow.State(userID)})
}
