package user

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kitchenly_back_end/internal/catalog"
	"kitchenly_back_end/internal/notify"
	"kitchenly_back_end/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func setupCartRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// Authentification simulée pour les tests
	r.Use(func(c *gin.Context) { c.Set("user_id", "u1") })

	h := NewCartHandler(store.NewCartStore(), catalog.Seed(), notify.NewHub())
	r.GET("/api/cart", h.GetCart)
	r.POST("/api/cart/add", h.AddToCart)
	r.DELETE("/api/cart/clear", h.ClearCart)
	r.PUT("/api/cart/:productId", h.UpdateCartItem)
	r.DELETE("/api/cart/:productId", h.RemoveFromCart)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func cartBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestGetCartEmpty(t *testing.T) {
	r := setupCartRouter()

	w := doJSON(t, r, http.MethodGet, "/api/cart", "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := cartBody(t, w)
	require.Empty(t, resp["items"])
	require.EqualValues(t, 0, resp["count"])
}

func TestAddToCartRejectsInvalidQuantity(t *testing.T) {
	r := setupCartRouter()

	w := doJSON(t, r, http.MethodPost, "/api/cart/add", `{"productId":"1","quantity":0}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Quantité invalide")
}

func TestAddToCartUnknownProduct(t *testing.T) {
	r := setupCartRouter()

	w := doJSON(t, r, http.MethodPost, "/api/cart/add", `{"productId":"999","quantity":1}`)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddToCartAndTotals(t *testing.T) {
	r := setupCartRouter()

	w := doJSON(t, r, http.MethodPost, "/api/cart/add", `{"productId":"2","quantity":1}`)
	require.Equal(t, http.StatusOK, w.Code)

	resp := cartBody(t, w)
	require.EqualValues(t, 1, resp["count"])

	totals := resp["totals"].(map[string]any)
	require.InDelta(t, 89.99, totals["subtotal"].(float64), 1e-9)
	require.Zero(t, totals["shipping"].(float64))
}

func TestUpdateQuantityClampsViaAPI(t *testing.T) {
	r := setupCartRouter()
	doJSON(t, r, http.MethodPost, "/api/cart/add", `{"productId":"2","quantity":3}`)

	w := doJSON(t, r, http.MethodPut, "/api/cart/2", `{"quantity":0}`)
	require.Equal(t, http.StatusOK, w.Code)

	resp := cartBody(t, w)
	items := resp["items"].([]any)
	require.Len(t, items, 1, "un clamp ne supprime jamais la ligne")
	require.EqualValues(t, 1, items[0].(map[string]any)["quantity"])
}

func TestRemoveAndClearCart(t *testing.T) {
	r := setupCartRouter()
	doJSON(t, r, http.MethodPost, "/api/cart/add", `{"productId":"1","quantity":1}`)
	doJSON(t, r, http.MethodPost, "/api/cart/add", `{"productId":"2","quantity":1}`)

	w := doJSON(t, r, http.MethodDelete, "/api/cart/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, cartBody(t, w)["items"].([]any), 1)

	w = doJSON(t, r, http.MethodDelete, "/api/cart/clear", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/cart", "")
	require.Empty(t, cartBody(t, w)["items"])
}
