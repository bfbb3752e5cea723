package user

import (
	"log"
	"net/http"

	"kitchenly_back_end/internal/models"
	"kitchenly_back_end/internal/store"
	"kitchenly_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct {
	Users *store.UserStore
}

func NewAuthHandler(users *store.UserStore) *AuthHandler {
	return &AuthHandler{Users: users}
}

// ================== AUTH LOCALE ==================

// CreateUser inscrit un nouveau compte. L'inscription est bloquée si les
// mots de passe ne correspondent pas ou si les conditions ne sont pas
// acceptées — notice immédiate, compte non créé.
func (h *AuthHandler) CreateUser(c *gin.Context) {
	var input struct {
		Name            string `json:"name"`
		Email           string `json:"email" binding:"required"`
		Password        string `json:"password" binding:"required"`
		ConfirmPassword string `json:"confirmPassword"`
		AgreeToTerms    bool   `json:"agreeToTerms"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if input.Password != input.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Les mots de passe ne correspondent pas"})
		return
	}

	if !input.AgreeToTerms {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Vous devez accepter les conditions d'utilisation"})
		return
	}

	if len(input.Password) < 8 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le mot de passe doit contenir au moins 8 caractères"})
		return
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création utilisateur"})
		return
	}

	user := models.User{
		ID:       uuid.NewString(),
		Name:     input.Name,
		Email:    input.Email,
		Password: hashedPassword,
	}

	if err := h.Users.Create(user); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Un compte avec cet email existe déjà"})
		return
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}

	log.Printf("✅ Compte créé pour %s", user.Email)

	c.JSON(http.StatusCreated, gin.H{
		"token":  token,
		"userId": user.ID,
		"email":  user.Email,
		"name":   user.Name,
	})
}

// Login authentifie un compte local. Effet simulé : tout vit en mémoire.
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	user, ok := h.Users.FindByEmail(input.Email)
	if !ok || !utils.VerifyPassword(input.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou mot de passe incorrect"})
		return
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":  token,
		"userId": user.ID,
		"email":  user.Email,
		"name":   user.Name,
	})
}

// GetMe retourne le profil de l'utilisateur connecté.
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	user, ok := h.Users.Get(userID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Utilisateur introuvable"})
		return
	}

	c.JSON(http.StatusOK, user)
}
