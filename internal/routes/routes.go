package routes

import (
	pa "kitchenly_back_end/internal/handlers/payement"
	"kitchenly_back_end/internal/handlers/product"
	"kitchenly_back_end/internal/handlers/user"
	"kitchenly_back_end/internal/middleware"
	"kitchenly_back_end/internal/state"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes construit les handlers depuis l'état applicatif et monte
// toutes les routes de l'API.
func RegisterRoutes(r *gin.Engine, app *state.App) {
	authHandler := user.NewAuthHandler(app.Users)
	cartHandler := user.NewCartHandler(app.Carts, app.Catalog, app.Hub)
	wishlistHandler := user.NewWishlistHandler(app.Favorites, app.Catalog)
	accountHandler := user.NewAccountHandler()
	orderHandler := user.NewOrderHandler(app.Orders)
	productHandler := product.NewProductHandler(app.Catalog)
	checkoutHandler := pa.NewCheckoutHandler(app.Checkout, app.Carts)

	api := r.Group("/api")

	// Auth (simulation locale)
	api.POST("/auth/register", middleware.RegisterRateLimit(), authHandler.CreateUser)
	api.POST("/auth/login", middleware.LoginRateLimit(), authHandler.Login)

	// Catalogue (public)
	api.GET("/products", productHandler.GetProducts)
	api.GET("/products/search", productHandler.SearchProductsAdvanced)
	api.GET("/products/:id", productHandler.GetProductByID)
	api.GET("/categories", productHandler.GetCategories)
	api.GET("/categories/:name/products", productHandler.GetProductsByCategory)

	// Routes authentifiées
	auth := api.Group("")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/me", authHandler.GetMe)

		// Panier
		auth.GET("/cart", cartHandler.GetCart)
		auth.POST("/cart/add", cartHandler.AddToCart)
		auth.DELETE("/cart/clear", cartHandler.ClearCart)
		auth.PUT("/cart/:productId", cartHandler.UpdateCartItem)
		auth.DELETE("/cart/:productId", cartHandler.RemoveFromCart)
		auth.GET("/cart/ws", cartHandler.CartWebSocket)

		// Favoris
		auth.GET("/wishlist", wishlistHandler.GetWishlist)
		auth.POST("/wishlist/toggle", wishlistHandler.ToggleWishlist)
		auth.DELETE("/wishlist/:productId", wishlistHandler.RemoveFromWishlist)

		// Adresses et moyens de paiement (listes fixes)
		auth.GET("/addresses/mine", accountHandler.ListMyAddresses)
		auth.GET("/payment-methods/mine", accountHandler.ListMyPaymentMethods)

		// Checkout
		auth.GET("/checkout", checkoutHandler.GetCheckout)
		auth.POST("/checkout/select", checkoutHandler.SelectOptions)
		auth.POST("/checkout/place-order", checkoutHandler.PlaceOrder)
		auth.GET("/checkout/state", checkoutHandler.GetState)

		// Commandes
		auth.GET("/orders", orderHandler.GetMyOrders)
		auth.GET("/orders/:id", orderHandler.GetOrderByID)
		auth.GET("/orders/:id/tracking", orderHandler.GetOrderTracking)
		auth.GET("/orders/:id/qrcode", orderHandler.GetOrderQRCode)
	}
}
