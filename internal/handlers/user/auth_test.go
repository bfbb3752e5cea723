package user

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kitchenly_back_end/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(store.NewUserStore())
	r.POST("/api/auth/register", h.CreateUser)
	r.POST("/api/auth/login", h.Login)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const validSignUp = `{
	"name": "Marie",
	"email": "marie@example.com",
	"password": "motdepasse",
	"confirmPassword": "motdepasse",
	"agreeToTerms": true
}`

func TestSignUpSuccess(t *testing.T) {
	r := setupAuthRouter()

	w := postJSON(t, r, "/api/auth/register", validSignUp)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["token"])
	require.Equal(t, "marie@example.com", resp["email"])
}

func TestSignUpPasswordMismatchIsBlocking(t *testing.T) {
	r := setupAuthRouter()

	w := postJSON(t, r, "/api/auth/register", `{
		"email": "marie@example.com",
		"password": "motdepasse",
		"confirmPassword": "autrechose",
		"agreeToTerms": true
	}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "mots de passe")

	// Le compte n'a pas été créé : la connexion échoue
	w = postJSON(t, r, "/api/auth/login", `{"email":"marie@example.com","password":"motdepasse"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSignUpRequiresTermsAgreement(t *testing.T) {
	r := setupAuthRouter()

	w := postJSON(t, r, "/api/auth/register", `{
		"email": "marie@example.com",
		"password": "motdepasse",
		"confirmPassword": "motdepasse",
		"agreeToTerms": false
	}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "conditions")
}

func TestSignUpDuplicateEmail(t *testing.T) {
	r := setupAuthRouter()

	require.Equal(t, http.StatusCreated, postJSON(t, r, "/api/auth/register", validSignUp).Code)
	require.Equal(t, http.StatusConflict, postJSON(t, r, "/api/auth/register", validSignUp).Code)
}

func TestLogin(t *testing.T) {
	r := setupAuthRouter()
	postJSON(t, r, "/api/auth/register", validSignUp)

	w := postJSON(t, r, "/api/auth/login", `{"email":"marie@example.com","password":"motdepasse"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["token"])

	w = postJSON(t, r, "/api/auth/login", `{"email":"marie@example.com","password":"mauvais"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
