package notify

import "sync"

// Événements publiés sur le canal d'un utilisateur.
const (
	EventCartUpdated = "updated"
	EventCartCleared = "cleared"
	EventOrderPlaced = "order_placed"
)

// Hub est un pub/sub en mémoire par utilisateur. Il alimente la
// synchronisation temps réel du panier et le signal de fin de commande.
// L'envoi n'est jamais bloquant : un abonné saturé perd l'événement.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[chan string]bool
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[chan string]bool)}
}

// Subscribe ouvre un canal d'événements pour un utilisateur.
func (h *Hub) Subscribe(userID string) chan string {
	ch := make(chan string, 8)

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.subs[userID] == nil {
		h.subs[userID] = make(map[chan string]bool)
	}
	h.subs[userID][ch] = true
	return ch
}

// Unsubscribe ferme et retire le canal.
func (h *Hub) Unsubscribe(userID string, ch chan string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if subs := h.subs[userID]; subs[ch] {
		delete(subs, ch)
		close(ch)
		if len(subs) == 0 {
			delete(h.subs, userID)
		}
	}
}

// Publish diffuse un événement à tous les abonnés de l'utilisateur.
func (h *Hub) Publish(userID, event string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs[userID] {
		select {
		case ch <- event:
		default:
		}
	}
}
