package state

import (
	"time"

	"kitchenly_back_end/internal/catalog"
	"kitchenly_back_end/internal/checkout"
	"kitchenly_back_end/internal/models"
	"kitchenly_back_end/internal/notify"
	"kitchenly_back_end/internal/store"
)

// App regroupe tout l'état de l'application, possédé par le contrôleur
// racine et passé explicitement aux handlers — jamais de globals ambiants.
type App struct {
	Catalog   *catalog.Catalog
	Carts     *store.CartStore
	Favorites *store.FavoritesStore
	Orders    *store.OrderStore
	Users     *store.UserStore
	Checkout  *checkout.Flow
	Hub       *notify.Hub
}

// New construit l'état complet et branche le signal de fin de commande
// du checkout sur le hub de notifications.
func New(processingDelay, successDelay time.Duration) *App {
	app := &App{
		Catalog:   catalog.Seed(),
		Carts:     store.NewCartStore(),
		Favorites: store.NewFavoritesStore(),
		Orders:    store.NewOrderStore(),
		Users:     store.NewUserStore(),
		Hub:       notify.NewHub(),
	}

	app.Checkout = checkout.New(app.Carts, app.Orders, processingDelay, successDelay)
	app.Checkout.OnOrderPlaced(func(order models.Order) {
		app.Hub.Publish(order.UserID, notify.EventOrderPlaced)
	})

	return app
}
