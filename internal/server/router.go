package server

import (
	handler "bid-market/services/market/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(authHandler *handler.AuthHandler, marketHandler *handler.MarketHandler, auth Authenticator) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	requireAuth := AuthMiddleware(auth)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", authHandler.RegisterHandler)
		authGroup.POST("/token", authHandler.TokenHandler)
	}

	products := router.Group("/products")
	{
		products.GET("", marketHandler.ListActiveHandler)
		products.GET("/:product_id", marketHandler.GetListingHandler)

		products.POST("", requireAuth, marketHandler.CreateListingHandler)
		products.POST("/:product_id/bid", requireAuth, marketHandler.PlaceBidHandler)
		products.PATCH("/:product_id/close", requireAuth, marketHandler.CloseListingHandler)

		products.POST("/:product_id/favorite", requireAuth, marketHandler.AddFavoriteHandler)
		products.DELETE("/:product_id/favorite", requireAuth, marketHandler.RemoveFavoriteHandler)
		products.GET("/:product_id/favorite-status", requireAuth, marketHandler.FavoriteStatusHandler)
	}

	me := router.Group("/users/me", requireAuth)
	{
		me.GET("/products", marketHandler.MyListingsHandler)
		me.GET("/favorites", marketHandler.MyFavoritesHandler)
		me.GET("/won", marketHandler.MyWonAuctionsHandler)
	}

	return router
}
