// Package routes registers the HTTP route groups of the application.
package routes

import (
	"github.com/gin-gonic/gin"

	authhandlers "gestiontickets/internal/interfaces/http/handlers/auth"
)

type AuthRouteConfig struct {
	AuthHandler    *authhandlers.AuthHandler
	LoginRateLimit gin.HandlerFunc
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/login", config.LoginRateLimit, config.AuthHandler.Login)
		auth.POST("/refresh", config.AuthHandler.Refresh)
		auth.POST("/logout", config.AuthHandler.Logout)
	}
}
