package ticket

import "github.com/gin-gonic/gin"

type CreateTicketRequest struct {
	MemberID    uint   `json:"member_id" binding:"required"`
	Description string `json:"description" binding:"required,max=5000"`
}

type UpdateTicketRequest struct {
	MemberID    uint   `json:"member_id" binding:"required"`
	Description string `json:"description" binding:"required,max=5000"`
}

type AppendHistoryRequest struct {
	StatusID uint   `json:"status_id" binding:"required"`
	Note     string `json:"note" binding:"required,max=5000"`
}

// ListTicketsRequest carries the listing filters straight from the query
// string. Status is validated downstream so an unknown value is a 400.
type ListTicketsRequest struct {
	RequesterName string
	Status        string
	Page          int
}

func parseListTicketsRequest(c *gin.Context, page int) ListTicketsRequest {
	return ListTicketsRequest{
		RequesterName: c.Query("requester_name"),
		Status:        c.Query("status"),
		Page:          page,
	}
}
