package store

import "sync"

// FavoritesStore maintient l'ensemble des produits favoris par utilisateur.
// Indépendant du panier ; le toggle est symétrique.
type FavoritesStore struct {
	mu   sync.Mutex
	sets map[string]map[string]bool
}

func NewFavoritesStore() *FavoritesStore {
	return &FavoritesStore{sets: make(map[string]map[string]bool)}
}

// Toggle inverse l'appartenance d'un produit aux favoris et retourne
// le nouvel état (true = favori).
func (s *FavoritesStore) Toggle(userID, productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.sets[userID]
	if set == nil {
		set = make(map[string]bool)
		s.sets[userID] = set
	}

	if set[productID] {
		delete(set, productID)
		return false
	}
	set[productID] = true
	return true
}

func (s *FavoritesStore) Contains(userID, productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sets[userID][productID]
}

// Remove retire un produit des favoris. Absent : no-op.
func (s *FavoritesStore) Remove(userID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sets[userID], productID)
}

// List retourne les identifiants des produits favoris.
func (s *FavoritesStore) List(userID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.sets[userID]))
	for id := range s.sets[userID] {
		ids = append(ids, id)
	}
	return ids
}
