package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gestiontickets/internal/domain/member"
	"gestiontickets/internal/domain/status"
	"gestiontickets/internal/domain/ticket"
	"gestiontickets/internal/infrastructure/persistence/models"
	"gestiontickets/internal/shared/constants"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.MemberModel{},
		&models.StatusModel{},
		&models.TicketModel{},
		&models.HistoryEventModel{},
		&models.UserModel{},
	)
	require.NoError(t, err)

	return db
}

// seedStatuses inserts the three catalog entries and returns their IDs keyed
// by label.
func seedStatuses(t *testing.T, db *gorm.DB) map[string]uint {
	t.Helper()

	repo := NewStatusRepository(db)
	ids := make(map[string]uint, 3)
	for _, label := range []string{
		constants.StatusPending,
		constants.StatusInProgress,
		constants.StatusResolved,
	} {
		s, err := status.NewStatus(label)
		require.NoError(t, err)
		require.NoError(t, repo.Save(context.Background(), s))
		ids[label] = s.ID()
	}
	return ids
}

func createTestMember(t *testing.T, db *gorm.DB, surname, givenNames, nationalID string) *member.Member {
	t.Helper()

	m, err := member.NewMember(surname, givenNames, nationalID,
		time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, NewMemberRepository(db).Save(context.Background(), m))
	return m
}

func createTestTicket(t *testing.T, db *gorm.DB, memberID uint, description string) *ticket.Ticket {
	t.Helper()

	tk, err := ticket.NewTicket(memberID, description)
	require.NoError(t, err)
	require.NoError(t, NewTicketRepository(db).Save(context.Background(), tk))
	return tk
}

func appendTestEvent(t *testing.T, db *gorm.DB, ticketID, statusID uint, note string, at time.Time) *ticket.HistoryEvent {
	t.Helper()

	e, err := ticket.NewHistoryEventAt(ticketID, statusID, note, at)
	require.NoError(t, err)
	require.NoError(t, NewTicketRepository(db).SaveEvent(context.Background(), e))
	return e
}
