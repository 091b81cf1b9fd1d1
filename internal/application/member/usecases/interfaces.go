package usecases

import (
	"context"
	"io"

	"gestiontickets/internal/application/member/dto"
)

// PhotoStore is the slice of the photo storage the member usecases need.
type PhotoStore interface {
	Put(r io.Reader, originalName string) (string, error)
	Delete(key string)
	URL(key string) string
}

type CreateMemberExecutor interface {
	Execute(ctx context.Context, cmd CreateMemberCommand) (*CreateMemberResult, error)
}

type UpdateMemberExecutor interface {
	Execute(ctx context.Context, cmd UpdateMemberCommand) error
}

type DeleteMemberExecutor interface {
	Execute(ctx context.Context, cmd DeleteMemberCommand) error
}

type GetMemberExecutor interface {
	Execute(ctx context.Context, query GetMemberQuery) (*dto.MemberDTO, error)
}

type ListMembersExecutor interface {
	Execute(ctx context.Context, query ListMembersQuery) (*ListMembersResult, error)
}

type UploadPhotoExecutor interface {
	Execute(ctx context.Context, cmd UploadPhotoCommand) (*UploadPhotoResult, error)
}

type ImportMembersExecutor interface {
	Execute(ctx context.Context, cmd ImportMembersCommand) (*ImportMembersResult, error)
}
