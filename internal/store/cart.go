package store

import (
	"sync"

	"kitchenly_back_end/internal/models"
)

// Règles de calcul du panier.
const (
	FreeShippingThreshold = 50.00
	ShippingFlatRate      = 5.99
	TaxRate               = 0.08
)

// CartStore maintient un panier par utilisateur, en mémoire uniquement.
// La durée de vie d'un panier est bornée par la session : rien ne survit
// à un redémarrage.
type CartStore struct {
	mu    sync.Mutex
	carts map[string][]models.CartItem
}

func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[string][]models.CartItem)}
}

// Items retourne les lignes du panier dans l'ordre d'ajout.
func (s *CartStore) Items(userID string) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneItems(s.carts[userID])
}

// AddItem ajoute un produit au panier. Si le produit y figure déjà, seule
// la quantité est incrémentée : l'instantané produit n'est pas réécrit.
// Une quantité < 1 est refusée en amont par le handler ; ici c'est un no-op.
func (s *CartStore) AddItem(userID string, product models.Product, quantity int) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity < 1 {
		return cloneItems(s.carts[userID])
	}

	cart := s.carts[userID]
	found := false
	for i := range cart {
		if cart[i].ID == product.ID {
			cart[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		cart = append(cart, models.CartItem{Product: product, Quantity: quantity})
	}
	s.carts[userID] = cart

	return cloneItems(cart)
}

// UpdateQuantity fixe la quantité d'une ligne. Une quantité < 1 est ramenée
// à 1 — jamais de suppression implicite. Produit absent : no-op.
func (s *CartStore) UpdateQuantity(userID, productID string, quantity int) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity < 1 {
		quantity = 1
	}

	cart := s.carts[userID]
	for i := range cart {
		if cart[i].ID == productID {
			cart[i].Quantity = quantity
			break
		}
	}

	return cloneItems(cart)
}

// RemoveItem supprime une ligne du panier. Produit absent : no-op.
func (s *CartStore) RemoveItem(userID, productID string) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[userID]
	newCart := cart[:0:0]
	for _, item := range cart {
		if item.ID != productID {
			newCart = append(newCart, item)
		}
	}
	s.carts[userID] = newCart

	return cloneItems(newCart)
}

// Clear vide le panier. Appelé une seule fois, après une commande réussie.
func (s *CartStore) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

// Count retourne le nombre de lignes du panier (badge du header).
func (s *CartStore) Count(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.carts[userID])
}

// Totals recalcule les montants à partir de l'état courant du panier.
func (s *CartStore) Totals(userID string) models.CartTotals {
	return ComputeTotals(s.Items(userID))
}

// ComputeTotals est une fonction pure : sous-total = Σ prix × quantité,
// livraison offerte au-dessus de 50.00 (strictement), taxe à 8%.
func ComputeTotals(items []models.CartItem) models.CartTotals {
	subtotal := 0.0
	for _, item := range items {
		subtotal += item.PriceValue() * float64(item.Quantity)
	}

	shipping := ShippingFlatRate
	if subtotal > FreeShippingThreshold {
		shipping = 0
	}
	tax := subtotal * TaxRate

	return models.CartTotals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}

func cloneItems(items []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, len(items))
	copy(out, items)
	return out
}
