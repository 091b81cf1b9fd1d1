package member

import (
	"context"

	"gestiontickets/internal/shared/query"
)

// Filter narrows the member listing. Text fields are substring matches,
// combined with logical AND.
type Filter struct {
	GivenNames string
	Surname    string
	NationalID string
	Page       query.PageFilter
}

type Repository interface {
	Save(ctx context.Context, m *Member) error
	Update(ctx context.Context, m *Member) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Member, error)
	Exists(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context, filter Filter) ([]*Member, int64, error)
	SaveBatch(ctx context.Context, members []*Member) error
}
