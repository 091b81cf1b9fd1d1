package status

import "fmt"

// Status is one entry of the small catalog of ticket states. The catalog is
// seeded at startup and referenced by history events; nothing mutates it at
// request time.
type Status struct {
	id    uint
	label string
}

func NewStatus(label string) (*Status, error) {
	if len(label) == 0 {
		return nil, fmt.Errorf("label is required")
	}
	if len(label) > 50 {
		return nil, fmt.Errorf("label exceeds maximum length of 50 characters")
	}
	return &Status{label: label}, nil
}

func ReconstructStatus(id uint, label string) (*Status, error) {
	if id == 0 {
		return nil, fmt.Errorf("status ID cannot be zero")
	}
	if len(label) == 0 {
		return nil, fmt.Errorf("label is required")
	}
	return &Status{id: id, label: label}, nil
}

func (s *Status) ID() uint {
	return s.id
}

func (s *Status) Label() string {
	return s.label
}

func (s *Status) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("status ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("status ID cannot be zero")
	}
	s.id = id
	return nil
}
