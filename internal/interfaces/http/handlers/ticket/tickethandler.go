package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gestiontickets/internal/application/ticket/usecases"
	"gestiontickets/internal/domain/user"
	"gestiontickets/internal/shared/authorization"
	"gestiontickets/internal/shared/constants"
	"gestiontickets/internal/shared/errors"
	"gestiontickets/internal/shared/logger"
	"gestiontickets/internal/shared/query"
	"gestiontickets/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC  usecases.CreateTicketExecutor
	updateTicketUC  usecases.UpdateTicketExecutor
	deleteTicketUC  usecases.DeleteTicketExecutor
	getTicketUC     usecases.GetTicketExecutor
	listTicketsUC   usecases.ListTicketsExecutor
	appendHistoryUC usecases.AppendHistoryExecutor
	userRepo        user.Repository
	logger          logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	appendHistoryUC usecases.AppendHistoryExecutor,
	userRepo user.Repository,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:  createTicketUC,
		updateTicketUC:  updateTicketUC,
		deleteTicketUC:  deleteTicketUC,
		getTicketUC:     getTicketUC,
		listTicketsUC:   listTicketsUC,
		appendHistoryUC: appendHistoryUC,
		userRepo:        userRepo,
		logger:          logger.NewLogger(),
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		MemberID:    req.MemberID,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// UpdateTicket handles POST /tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	actorMemberID, err := h.resolveActorMemberID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.updateTicketUC.Execute(c.Request.Context(), usecases.UpdateTicketCommand{
		TicketID:      ticketID,
		MemberID:      req.MemberID,
		Description:   req.Description,
		ActorMemberID: actorMemberID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", nil)
}

// DeleteTicket handles POST /tickets/:id/delete
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorMemberID, err := h.resolveActorMemberID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		TicketID:      ticketID,
		ActorMemberID: actorMemberID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket deleted successfully", nil)
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	req := parseListTicketsRequest(c, utils.ParsePageQuery(c))

	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		RequesterName: req.RequesterName,
		Status:        req.Status,
		Page:          req.Page,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	paginator := query.NewPaginator(query.PageFilter{Page: result.Page, PageSize: result.PageSize}, result.Total)
	paginator.Keep("requester_name", req.RequesterName)
	paginator.Keep("status", result.Status)

	utils.ListSuccessResponse(c, result.Tickets, paginator)
}

// AppendHistory handles POST /tickets/:id/history
func (h *TicketHandler) AppendHistory(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AppendHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	actorMemberID, err := h.resolveActorMemberID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.appendHistoryUC.Execute(c.Request.Context(), usecases.AppendHistoryCommand{
		TicketID:      ticketID,
		StatusID:      req.StatusID,
		Note:          req.Note,
		ActorMemberID: actorMemberID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "History event appended successfully")
}

// resolveActorMemberID maps a member-role session to its member record so the
// usecase can enforce ownership. Admin sessions get no restriction.
func (h *TicketHandler) resolveActorMemberID(c *gin.Context) (*uint, error) {
	role, _ := c.Get(constants.ContextKeyUserRole)
	if role != string(authorization.RoleMember) {
		return nil, nil
	}

	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return nil, nil
	}

	account, err := h.userRepo.FindByID(c.Request.Context(), userID.(uint))
	if err != nil {
		return nil, err
	}
	if account.MemberID() == nil {
		return nil, errors.NewForbiddenError("account is not linked to a member")
	}
	return account.MemberID(), nil
}
