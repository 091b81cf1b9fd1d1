package usecases

import (
	"context"
	"io"

	"gestiontickets/internal/domain/member"
	"gestiontickets/internal/shared/logger"
)

type UploadPhotoCommand struct {
	MemberID uint
	File     io.Reader
	Filename string
}

type UploadPhotoResult struct {
	PhotoURL string
}

type UploadPhotoUseCase struct {
	memberRepo member.Repository
	photos     PhotoStore
	logger     logger.Interface
}

func NewUploadPhotoUseCase(memberRepo member.Repository, photos PhotoStore, logger logger.Interface) *UploadPhotoUseCase {
	return &UploadPhotoUseCase{
		memberRepo: memberRepo,
		photos:     photos,
		logger:     logger,
	}
}

// Execute writes the new photo first, commits the reference, then disposes of
// the superseded file. A failed commit rolls the new file back; a failed
// old-file delete is swallowed by the store.
func (uc *UploadPhotoUseCase) Execute(ctx context.Context, cmd UploadPhotoCommand) (*UploadPhotoResult, error) {
	uc.logger.Infow("executing upload photo use case", "member_id", cmd.MemberID)

	m, err := uc.memberRepo.FindByID(ctx, cmd.MemberID)
	if err != nil {
		return nil, err
	}

	newKey, err := uc.photos.Put(cmd.File, cmd.Filename)
	if err != nil {
		uc.logger.Errorw("failed to store photo", "member_id", cmd.MemberID, "error", err)
		return nil, err
	}

	oldKey := m.ReplacePhoto(newKey)

	if err := uc.memberRepo.Update(ctx, m); err != nil {
		uc.photos.Delete(newKey)
		uc.logger.Errorw("failed to commit photo reference", "member_id", cmd.MemberID, "error", err)
		return nil, err
	}

	uc.photos.Delete(oldKey)

	uc.logger.Infow("photo replaced successfully", "member_id", cmd.MemberID)

	return &UploadPhotoResult{PhotoURL: uc.photos.URL(newKey)}, nil
}
