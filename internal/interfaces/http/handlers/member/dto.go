package member

import (
	"time"

	apperrors "gestiontickets/internal/shared/errors"
)

type MemberRequest struct {
	Surname    string `json:"surname" binding:"required,max=100"`
	GivenNames string `json:"given_names" binding:"required,max=100"`
	NationalID string `json:"national_id" binding:"required,max=20"`
	BirthDate  string `json:"birth_date" binding:"required"`
}

// ParseBirthDate accepts the wire format used everywhere members travel.
func (r MemberRequest) ParseBirthDate() (time.Time, error) {
	t, err := time.Parse("2006-01-02", r.BirthDate)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("birth date must be YYYY-MM-DD", r.BirthDate)
	}
	return t, nil
}
