package member

import (
	"fmt"
	"time"
)

// Member is a registered person eligible to raise tickets. The photo key is
// an opaque reference into the photo store; replacing it is the caller's
// responsibility (write new, commit reference, delete old).
type Member struct {
	id         uint
	surname    string
	givenNames string
	nationalID string
	birthDate  time.Time
	photoKey   string
	version    int
	createdAt  time.Time
	updatedAt  time.Time
}

func NewMember(surname, givenNames, nationalID string, birthDate time.Time) (*Member, error) {
	if err := validateFields(surname, givenNames, nationalID); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Member{
		surname:    CanonicalName(surname),
		givenNames: CanonicalName(givenNames),
		nationalID: nationalID,
		birthDate:  birthDate,
		version:    1,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructMember(
	id uint,
	surname, givenNames, nationalID string,
	birthDate time.Time,
	photoKey string,
	version int,
	createdAt, updatedAt time.Time,
) (*Member, error) {
	if id == 0 {
		return nil, fmt.Errorf("member ID cannot be zero")
	}
	if err := validateFields(surname, givenNames, nationalID); err != nil {
		return nil, err
	}

	return &Member{
		id:         id,
		surname:    surname,
		givenNames: givenNames,
		nationalID: nationalID,
		birthDate:  birthDate,
		photoKey:   photoKey,
		version:    version,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func validateFields(surname, givenNames, nationalID string) error {
	if len(surname) == 0 {
		return fmt.Errorf("surname is required")
	}
	if len(surname) > 100 {
		return fmt.Errorf("surname exceeds maximum length of 100 characters")
	}
	if len(givenNames) == 0 {
		return fmt.Errorf("given names are required")
	}
	if len(givenNames) > 100 {
		return fmt.Errorf("given names exceed maximum length of 100 characters")
	}
	if len(nationalID) == 0 {
		return fmt.Errorf("national ID is required")
	}
	if len(nationalID) > 20 {
		return fmt.Errorf("national ID exceeds maximum length of 20 characters")
	}
	return nil
}

func (m *Member) ID() uint {
	return m.id
}

func (m *Member) Surname() string {
	return m.surname
}

func (m *Member) GivenNames() string {
	return m.givenNames
}

func (m *Member) NationalID() string {
	return m.nationalID
}

func (m *Member) BirthDate() time.Time {
	return m.birthDate
}

func (m *Member) PhotoKey() string {
	return m.photoKey
}

// Version is the optimistic-lock counter persisted alongside the record.
func (m *Member) Version() int {
	return m.version
}

func (m *Member) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Member) UpdatedAt() time.Time {
	return m.updatedAt
}

func (m *Member) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("member ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("member ID cannot be zero")
	}
	m.id = id
	return nil
}

// UpdateDetails replaces the identity fields of the member.
func (m *Member) UpdateDetails(surname, givenNames, nationalID string, birthDate time.Time) error {
	if err := validateFields(surname, givenNames, nationalID); err != nil {
		return err
	}

	m.surname = CanonicalName(surname)
	m.givenNames = CanonicalName(givenNames)
	m.nationalID = nationalID
	m.birthDate = birthDate
	m.updatedAt = time.Now()

	return nil
}

// ReplacePhoto commits a new photo reference and returns the key of the
// superseded asset, empty when the member had none.
func (m *Member) ReplacePhoto(newKey string) (oldKey string) {
	oldKey = m.photoKey
	m.photoKey = newKey
	m.updatedAt = time.Now()
	return oldKey
}
