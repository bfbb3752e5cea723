package user

import (
	"net/http"

	"kitchenly_back_end/internal/checkout"

	"github.com/gin-gonic/gin"
)

//
// --- HANDLERS ADRESSES & MOYENS DE PAIEMENT ---
//
// Listes candidates fixes : l'app ne gère ni création ni édition,
// la sélection au checkout est un simple index.

type AccountHandler struct{}

func NewAccountHandler() *AccountHandler {
	return &AccountHandler{}
}

// 🟢 GET /api/addresses/mine
func (h *AccountHandler) ListMyAddresses(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"addresses": checkout.DefaultAddresses()})
}

// 🟢 GET /api/payment-methods/mine
func (h *AccountHandler) ListMyPaymentMethods(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"payment_methods": checkout.DefaultPaymentMethods()})
}
