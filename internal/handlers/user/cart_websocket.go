package user

import (
	"log"
	"net/http"
	"time"

	"kitchenly_back_end/internal/notify"
	"kitchenly_back_end/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Autoriser toutes les origines (à ajuster en production)
		return true
	},
}

// CartWebSocket gère la synchronisation temps réel du panier et relaie
// le signal de confirmation de commande au shell applicatif.
func (h *CartHandler) CartWebSocket(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Non authentifié"})
		return
	}

	// Upgrade vers WebSocket
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Erreur upgrade WebSocket: %v", err)
		return
	}
	defer conn.Close()

	// S'abonner au canal de l'utilisateur
	ch := h.Hub.Subscribe(userID)
	defer h.Hub.Unsubscribe(userID, ch)

	// Envoyer un message de connexion
	conn.WriteJSON(map[string]interface{}{
		"type":    "connected",
		"message": "Synchronisation panier activée",
	})

	// Boucle d'écoute
	for {
		select {
		case event, ok := <-ch:
			if !ok {
				return
			}

			var response map[string]interface{}
			switch event {
			case notify.EventCartUpdated, notify.EventCartCleared:
				items := h.Carts.Items(userID)
				totals := store.ComputeTotals(items)
				response = map[string]interface{}{
					"type":  "cart_updated",
					"items": items,
					"total": totals.Total,
					"count": len(items),
				}
			case notify.EventOrderPlaced:
				response = map[string]interface{}{
					"type":    "order_placed",
					"message": "Commande confirmée, panier vidé",
				}
			default:
				continue
			}

			// Envoyer au client
			if err := conn.WriteJSON(response); err != nil {
				log.Printf("❌ Erreur envoi WebSocket: %v", err)
				return
			}
		case <-time.After(30 * time.Second):
			// Ping pour garder la connexion active
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
