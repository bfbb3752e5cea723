package main

import (
	"log"

	"kitchenly_back_end/internal/config"
	"kitchenly_back_end/internal/routes"
	"kitchenly_back_end/internal/state"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.Load()

	// ✅ Tout l'état applicatif vit ici, en mémoire, pour la durée de la session
	app := state.New(config.ProcessingDelay(), config.SuccessDelay())
	log.Printf("✅ Catalogue chargé (%d produits, %d catégories)",
		len(app.Catalog.List()), len(app.Catalog.Categories()))

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	routes.RegisterRoutes(r, app)

	port := config.Port()
	log.Println("🚀 Serveur Kitchenly lancé sur le port", port)
	r.Run(":" + port)
}
