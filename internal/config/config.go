package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}
}

// Port retourne le port HTTP du serveur (8080 par défaut).
func Port() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return port
}

// JWTSecret retourne le secret de signature des tokens.
func JWTSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super_secret"
	}
	return secret
}

// ProcessingDelay est la durée simulée du traitement d'une commande.
func ProcessingDelay() time.Duration {
	return durationEnv("CHECKOUT_PROCESSING_DELAY", 2*time.Second)
}

// SuccessDelay est la durée d'affichage de la confirmation avant fermeture.
func SuccessDelay() time.Duration {
	return durationEnv("CHECKOUT_SUCCESS_DELAY", 500*time.Millisecond)
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("⚠️  %s invalide (%q), valeur par défaut utilisée", key, raw)
		return fallback
	}
	return d
}
