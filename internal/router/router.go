package router

import (
	"github.com/gin-gonic/gin"

	"github.com/platewise/recipe-service/internal/api"
)

// SetupRouter configures the application routes.
func SetupRouter(recipeHandler *api.RecipeHandler, debug bool) *gin.Engine {
	if debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	recipeHandler.RegisterRoutes(router)
	router.NoRoute(api.UnknownEndpoint)

	return router
}
