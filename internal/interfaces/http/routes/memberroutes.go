package routes

import (
	"github.com/gin-gonic/gin"

	memberhandlers "gestiontickets/internal/interfaces/http/handlers/member"
	"gestiontickets/internal/interfaces/http/middleware"
)

type MemberRouteConfig struct {
	MemberHandler        *memberhandlers.MemberHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupMemberRoutes(engine *gin.Engine, config *MemberRouteConfig) {
	members := engine.Group("/members")
	members.Use(config.AuthMiddleware.RequireAuth())
	{
		members.GET("",
			config.PermissionMiddleware.RequirePermission("member", "read"),
			config.MemberHandler.ListMembers)
		members.POST("",
			config.PermissionMiddleware.RequirePermission("member", "create"),
			config.MemberHandler.CreateMember)

		// Specific paths must come before the parameterized POST /:id.
		members.POST("/import",
			config.PermissionMiddleware.RequirePermission("member", "import"),
			config.MemberHandler.ImportMembers)
		members.POST("/:id/photo",
			config.PermissionMiddleware.RequirePermission("member", "update"),
			config.MemberHandler.UploadPhoto)
		members.POST("/:id/delete",
			config.PermissionMiddleware.RequirePermission("member", "delete"),
			config.MemberHandler.DeleteMember)

		members.GET("/:id",
			config.PermissionMiddleware.RequirePermission("member", "read"),
			config.MemberHandler.GetMember)
		members.POST("/:id",
			config.PermissionMiddleware.RequirePermission("member", "update"),
			config.MemberHandler.UpdateMember)
	}
}
