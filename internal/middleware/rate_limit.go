package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// Limites par endpoint
	LoginMaxAttempts    = 5
	RegisterMaxAttempts = 3

	// Durées de cooldown
	LoginCooldown    = 15 * time.Minute
	RegisterCooldown = 30 * time.Minute
)

// attemptCounter compte les tentatives par clé, en mémoire.
// Le state est local au processus : un redémarrage remet tout à zéro.
type attemptCounter struct {
	mu      sync.Mutex
	entries map[string]*attemptEntry
}

type attemptEntry struct {
	count       int
	cooldownEnd time.Time
}

var (
	loginAttempts    = &attemptCounter{entries: make(map[string]*attemptEntry)}
	registerAttempts = &attemptCounter{entries: make(map[string]*attemptEntry)}
)

func (a *attemptCounter) cooldownRemaining(key string, now time.Time) time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()

	entry := a.entries[key]
	if entry == nil || entry.cooldownEnd.Before(now) {
		return 0
	}
	return entry.cooldownEnd.Sub(now)
}

// record incrémente et active le cooldown si la limite est atteinte.
func (a *attemptCounter) record(key string, max int, cooldown time.Duration, now time.Time) {
	a.mu.Lock()
	defer a.mu.Unlock()

	entry := a.entries[key]
	if entry == nil {
		entry = &attemptEntry{}
		a.entries[key] = entry
	}
	entry.count++
	if entry.count >= max {
		entry.cooldownEnd = now.Add(cooldown)
		entry.count = 0
	}
}

func (a *attemptCounter) reset(key string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.entries, key)
}

// LoginRateLimit limite les tentatives de connexion par email
func LoginRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Lire le body sans le consommer
		bodyBytes, _ := io.ReadAll(c.Request.Body)

		var input struct {
			Email string `json:"email"`
		}

		if err := json.Unmarshal(bodyBytes, &input); err != nil || input.Email == "" {
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
			c.Next()
			return
		}

		// Remettre le body pour les handlers suivants
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		now := time.Now()
		if remaining := loginAttempts.cooldownRemaining(input.Email, now); remaining > 0 {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Trop de tentatives échouées. Réessayez dans %d minutes", int(remaining.Minutes())+1),
				"retry_after": int(remaining.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()

		// Si login échoué (401), incrémenter les tentatives
		switch c.Writer.Status() {
		case http.StatusUnauthorized:
			loginAttempts.record(input.Email, LoginMaxAttempts, LoginCooldown, now)
		case http.StatusOK:
			// Login réussi, réinitialiser les tentatives
			loginAttempts.reset(input.Email)
		}
	}
}

// RegisterRateLimit limite les inscriptions par IP
func RegisterRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		if remaining := registerAttempts.cooldownRemaining(ip, now); remaining > 0 {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Trop d'inscriptions. Réessayez dans %d minutes", int(remaining.Minutes())+1),
				"retry_after": int(remaining.Seconds()),
			})
			c.Abort()
			return
		}

		registerAttempts.record(ip, RegisterMaxAttempts, RegisterCooldown, now)
		c.Next()
	}
}
