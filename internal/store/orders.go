package store

import (
	"sync"
	"time"

	"kitchenly_back_end/internal/models"
)

// OrderStore conserve les commandes passées pendant la session, les plus
// récentes en premier.
type OrderStore struct {
	mu     sync.Mutex
	orders map[string][]models.Order
}

func NewOrderStore() *OrderStore {
	return &OrderStore{orders: make(map[string][]models.Order)}
}

func (s *OrderStore) Save(order models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[order.UserID] = append([]models.Order{order}, s.orders[order.UserID]...)
}

func (s *OrderStore) ListByUser(userID string) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Order, len(s.orders[userID]))
	copy(out, s.orders[userID])
	return out
}

func (s *OrderStore) Get(userID, orderID string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders[userID] {
		if o.ID == orderID || o.Reference == orderID {
			return o, true
		}
	}
	return models.Order{}, false
}

// TrackingSteps dérive la timeline de suivi de l'âge de la commande.
// Chaque étape se complète après un délai fixe depuis la création —
// purement simulé, comme le reste du parcours de commande.
func TrackingSteps(order models.Order, now time.Time) []models.TrackingStep {
	type stage struct {
		title       string
		description string
		after       time.Duration
	}

	stages := []stage{
		{"Order Placed", "Your order has been confirmed", 0},
		{"Processing", "Your order is being prepared", 1 * time.Hour},
		{"Shipped", "Your order is on the way", 24 * time.Hour},
		{"Out for Delivery", "Your order will arrive today", 48 * time.Hour},
		{"Delivered", "Package delivered", 72 * time.Hour},
	}

	age := now.Sub(order.CreatedAt)
	steps := make([]models.TrackingStep, 0, len(stages))
	for i, st := range stages {
		steps = append(steps, models.TrackingStep{
			ID:          i + 1,
			Title:       st.title,
			Description: st.description,
			Time:        order.CreatedAt.Add(st.after),
			Completed:   age >= st.after,
		})
	}
	return steps
}
