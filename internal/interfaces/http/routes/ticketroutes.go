package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "gestiontickets/internal/interfaces/http/handlers/ticket"
	"gestiontickets/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler        *tickethandlers.TicketHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	// Ticket reads are public: the listing doubles as the organization's
	// claim board.
	engine.GET("/tickets", config.TicketHandler.ListTickets)
	engine.GET("/tickets/:id", config.TicketHandler.GetTicket)

	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		tickets.POST("",
			config.PermissionMiddleware.RequirePermission("ticket", "create"),
			config.TicketHandler.CreateTicket)

		// Specific paths must come before the parameterized POST /:id.
		tickets.POST("/:id/history",
			config.PermissionMiddleware.RequirePermission("ticket", "append_history"),
			config.TicketHandler.AppendHistory)
		tickets.POST("/:id/delete",
			config.PermissionMiddleware.RequirePermission("ticket", "delete"),
			config.TicketHandler.DeleteTicket)

		tickets.POST("/:id",
			config.PermissionMiddleware.RequirePermission("ticket", "update"),
			config.TicketHandler.UpdateTicket)
	}
}
