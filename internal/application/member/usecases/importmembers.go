package usecases

import (
	"context"
	"time"

	"gestiontickets/internal/domain/member"
	"gestiontickets/internal/shared/db"
	"gestiontickets/internal/shared/errors"
	"gestiontickets/internal/shared/logger"
)

// ImportRowCommand is one already-parsed spreadsheet row. Row carries the
// 1-based workbook row number for error reporting.
type ImportRowCommand struct {
	Row        int
	Surname    string
	GivenNames string
	NationalID string
	BirthDate  time.Time
}

type ImportMembersCommand struct {
	Rows []ImportRowCommand
}

type ImportMembersResult struct {
	Imported int
}

type ImportMembersUseCase struct {
	memberRepo member.Repository
	txManager  *db.TransactionManager
	logger     logger.Interface
}

func NewImportMembersUseCase(
	memberRepo member.Repository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *ImportMembersUseCase {
	return &ImportMembersUseCase{
		memberRepo: memberRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// Execute validates every row, then persists the whole batch in one
// transaction: a single bad row means nothing is imported.
func (uc *ImportMembersUseCase) Execute(ctx context.Context, cmd ImportMembersCommand) (*ImportMembersResult, error) {
	uc.logger.Infow("executing import members use case", "rows", len(cmd.Rows))

	if len(cmd.Rows) == 0 {
		return &ImportMembersResult{Imported: 0}, nil
	}

	members := make([]*member.Member, len(cmd.Rows))
	for i, row := range cmd.Rows {
		m, err := member.NewMember(row.Surname, row.GivenNames, row.NationalID, row.BirthDate)
		if err != nil {
			uc.logger.Warnw("rejected import row", "row", row.Row, "error", err)
			return nil, errors.NewFormatError(row.Row, err.Error())
		}
		members[i] = m
	}

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.memberRepo.SaveBatch(txCtx, members)
	})
	if err != nil {
		uc.logger.Errorw("failed to import members", "error", err)
		return nil, err
	}

	uc.logger.Infow("members imported successfully", "count", len(members))

	return &ImportMembersResult{Imported: len(members)}, nil
}
