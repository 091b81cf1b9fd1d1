package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestiontickets/internal/domain/member"
	apperrors "gestiontickets/internal/shared/errors"
)

func TestCreateMemberUseCase_Execute_Success(t *testing.T) {
	var saved *member.Member
	mockRepo := &mockMemberRepository{
		SaveFunc: func(ctx context.Context, m *member.Member) error {
			require.NoError(t, m.SetID(12))
			saved = m
			return nil
		},
	}

	useCase := NewCreateMemberUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateMemberCommand{
		Surname:    "garcia",
		GivenNames: "ana maria",
		NationalID: "30111222",
		BirthDate:  time.Date(1985, 4, 2, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(12), result.MemberID)

	require.NotNil(t, saved)
	assert.Equal(t, "Garcia", saved.Surname())
	assert.Equal(t, "Ana Maria", saved.GivenNames())
	assert.Equal(t, "30111222", saved.NationalID())
}

func TestCreateMemberUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		command CreateMemberCommand
	}{
		{
			name:    "empty surname",
			command: CreateMemberCommand{GivenNames: "Ana", NationalID: "30111222"},
		},
		{
			name:    "empty given names",
			command: CreateMemberCommand{Surname: "Garcia", NationalID: "30111222"},
		},
		{
			name:    "empty national id",
			command: CreateMemberCommand{Surname: "Garcia", GivenNames: "Ana"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := NewCreateMemberUseCase(&mockMemberRepository{}, &mockLogger{})
			result, err := useCase.Execute(context.Background(), tt.command)

			assert.Nil(t, result)
			assert.True(t, apperrors.IsValidationError(err))
		})
	}
}

func TestUpdateMemberUseCase_Execute_Success(t *testing.T) {
	now := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	existing, err := member.ReconstructMember(12, "Garcia", "Ana", "30111222",
		time.Date(1985, 4, 2, 0, 0, 0, 0, time.UTC), "", 1, now, now)
	require.NoError(t, err)

	var updated *member.Member
	mockRepo := &mockMemberRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*member.Member, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, m *member.Member) error {
			updated = m
			return nil
		},
	}

	useCase := NewUpdateMemberUseCase(mockRepo, &mockLogger{})
	err = useCase.Execute(context.Background(), UpdateMemberCommand{
		MemberID:   12,
		Surname:    "garcia lopez",
		GivenNames: "Ana",
		NationalID: "30111222",
		BirthDate:  time.Date(1985, 4, 2, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Garcia Lopez", updated.Surname())
}

func TestUpdateMemberUseCase_Execute_StaleWrite(t *testing.T) {
	now := time.Now()
	existing, err := member.ReconstructMember(12, "Garcia", "Ana", "30111222",
		time.Date(1985, 4, 2, 0, 0, 0, 0, time.UTC), "", 1, now, now)
	require.NoError(t, err)

	mockRepo := &mockMemberRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*member.Member, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, m *member.Member) error {
			return apperrors.NewConcurrencyError("member was modified concurrently")
		},
	}

	useCase := NewUpdateMemberUseCase(mockRepo, &mockLogger{})
	err = useCase.Execute(context.Background(), UpdateMemberCommand{
		MemberID:   12,
		Surname:    "Garcia",
		GivenNames: "Ana",
		NationalID: "30111222",
		BirthDate:  time.Date(1985, 4, 2, 0, 0, 0, 0, time.UTC),
	})

	assert.True(t, apperrors.IsConcurrencyError(err))
}

func TestUpdateMemberUseCase_Execute_NotFound(t *testing.T) {
	mockRepo := &mockMemberRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*member.Member, error) {
			return nil, apperrors.NewNotFoundError("member not found")
		},
	}

	useCase := NewUpdateMemberUseCase(mockRepo, &mockLogger{})
	err := useCase.Execute(context.Background(), UpdateMemberCommand{MemberID: 99})

	assert.True(t, apperrors.IsNotFoundError(err))
}
