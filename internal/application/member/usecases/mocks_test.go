package usecases

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gestiontickets/internal/domain/member"
	"gestiontickets/internal/domain/ticket"
	"gestiontickets/internal/shared/db"
	"gestiontickets/internal/shared/logger"
)

// newTestTxManager backs the transaction manager with an in-memory database.
// The repositories under it are mocked, so no schema is needed.
func newTestTxManager(t *testing.T) *db.TransactionManager {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db.NewTransactionManager(gormDB)
}

type mockMemberRepository struct {
	SaveFunc      func(ctx context.Context, m *member.Member) error
	UpdateFunc    func(ctx context.Context, m *member.Member) error
	DeleteFunc    func(ctx context.Context, id uint) error
	FindByIDFunc  func(ctx context.Context, id uint) (*member.Member, error)
	ExistsFunc    func(ctx context.Context, id uint) (bool, error)
	ListFunc      func(ctx context.Context, filter member.Filter) ([]*member.Member, int64, error)
	SaveBatchFunc func(ctx context.Context, members []*member.Member) error
}

func (m *mockMemberRepository) Save(ctx context.Context, mb *member.Member) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, mb)
	}
	return nil
}

func (m *mockMemberRepository) Update(ctx context.Context, mb *member.Member) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, mb)
	}
	return nil
}

func (m *mockMemberRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockMemberRepository) FindByID(ctx context.Context, id uint) (*member.Member, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockMemberRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, nil
}

func (m *mockMemberRepository) List(ctx context.Context, filter member.Filter) ([]*member.Member, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockMemberRepository) SaveBatch(ctx context.Context, members []*member.Member) error {
	if m.SaveBatchFunc != nil {
		return m.SaveBatchFunc(ctx, members)
	}
	return nil
}

type mockTicketRepository struct {
	SaveFunc                 func(ctx context.Context, tk *ticket.Ticket) error
	UpdateFunc               func(ctx context.Context, tk *ticket.Ticket) error
	DeleteFunc               func(ctx context.Context, id uint) error
	FindByIDFunc             func(ctx context.Context, id uint) (*ticket.Ticket, error)
	ExistsFunc               func(ctx context.Context, id uint) (bool, error)
	ExistsByMemberIDFunc     func(ctx context.Context, memberID uint) (bool, error)
	ListFunc                 func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error)
	SaveEventFunc            func(ctx context.Context, e *ticket.HistoryEvent) error
	FindEventsByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.HistoryEvent, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, tk *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, tk)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, tk *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tk)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, nil
}

func (m *mockTicketRepository) ExistsByMemberID(ctx context.Context, memberID uint) (bool, error) {
	if m.ExistsByMemberIDFunc != nil {
		return m.ExistsByMemberIDFunc(ctx, memberID)
	}
	return false, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) SaveEvent(ctx context.Context, e *ticket.HistoryEvent) error {
	if m.SaveEventFunc != nil {
		return m.SaveEventFunc(ctx, e)
	}
	return nil
}

func (m *mockTicketRepository) FindEventsByTicketID(ctx context.Context, ticketID uint) ([]*ticket.HistoryEvent, error) {
	if m.FindEventsByTicketIDFunc != nil {
		return m.FindEventsByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockPhotoStore struct {
	PutFunc    func(r io.Reader, originalName string) (string, error)
	DeleteFunc func(key string)
	URLFunc    func(key string) string
}

func (m *mockPhotoStore) Put(r io.Reader, originalName string) (string, error) {
	if m.PutFunc != nil {
		return m.PutFunc(r, originalName)
	}
	return "", nil
}

func (m *mockPhotoStore) Delete(key string) {
	if m.DeleteFunc != nil {
		m.DeleteFunc(key)
	}
}

func (m *mockPhotoStore) URL(key string) string {
	if m.URLFunc != nil {
		return m.URLFunc(key)
	}
	return ""
}

type mockLogger struct {
	DebugFunc  func(msg string, args ...any)
	InfoFunc   func(msg string, args ...any)
	WarnFunc   func(msg string, args ...any)
	ErrorFunc  func(msg string, args ...any)
	InfowFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	DebugwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {
	if m.DebugFunc != nil {
		m.DebugFunc(msg, args...)
	}
}

func (m *mockLogger) Info(msg string, args ...any) {
	if m.InfoFunc != nil {
		m.InfoFunc(msg, args...)
	}
}

func (m *mockLogger) Warn(msg string, args ...any) {
	if m.WarnFunc != nil {
		m.WarnFunc(msg, args...)
	}
}

func (m *mockLogger) Error(msg string, args ...any) {
	if m.ErrorFunc != nil {
		m.ErrorFunc(msg, args...)
	}
}

func (m *mockLogger) With(args ...any) logger.Interface {
	return m
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {
	if m.DebugwFunc != nil {
		m.DebugwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}
