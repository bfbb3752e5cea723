package store

import (
	"errors"
	"strings"
	"sync"

	"kitchenly_back_end/internal/models"
)

var ErrEmailTaken = errors.New("un compte avec cet email existe déjà")

// UserStore est le registre des comptes de la session. L'inscription et la
// connexion sont simulées : aucun compte ne survit au redémarrage.
type UserStore struct {
	mu      sync.Mutex
	byEmail map[string]models.User
	byID    map[string]models.User
}

func NewUserStore() *UserStore {
	return &UserStore{
		byEmail: make(map[string]models.User),
		byID:    make(map[string]models.User),
	}
}

func (s *UserStore) Create(user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(user.Email)
	if _, exists := s.byEmail[email]; exists {
		return ErrEmailTaken
	}
	s.byEmail[email] = user
	s.byID[user.ID] = user
	return nil
}

func (s *UserStore) FindByEmail(email string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byEmail[strings.ToLower(email)]
	return u, ok
}

func (s *UserStore) Get(id string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	return u, ok
}
