package status

import "context"

type Repository interface {
	Save(ctx context.Context, s *Status) error
	FindByID(ctx context.Context, id uint) (*Status, error)
	FindByLabel(ctx context.Context, label string) (*Status, error)
	List(ctx context.Context) ([]*Status, error)
}
