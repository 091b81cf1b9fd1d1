// Package seed provisions the status catalog and the bootstrap accounts from
// a YAML file on startup. Seeding is idempotent: entries that already exist
// are left untouched.
package seed

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gestiontickets/internal/domain/status"
	"gestiontickets/internal/domain/user"
	"gestiontickets/internal/shared/authorization"
	apperrors "gestiontickets/internal/shared/errors"
	"gestiontickets/internal/shared/logger"
)

type File struct {
	Statuses []string   `yaml:"statuses"`
	Users    []UserSpec `yaml:"users"`
}

type UserSpec struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

type PasswordHasher interface {
	Hash(password string) (string, error)
}

type Seeder struct {
	statuses status.Repository
	users    user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewSeeder(statuses status.Repository, users user.Repository, hasher PasswordHasher, log logger.Interface) *Seeder {
	return &Seeder{
		statuses: statuses,
		users:    users,
		hasher:   hasher,
		logger:   log,
	}
}

// Run loads the seed file and applies it.
func (s *Seeder) Run(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	if err := s.seedStatuses(ctx, file.Statuses); err != nil {
		return err
	}
	if err := s.seedUsers(ctx, file.Users); err != nil {
		return err
	}

	s.logger.Infow("seed applied", "statuses", len(file.Statuses), "users", len(file.Users))
	return nil
}

func (s *Seeder) seedStatuses(ctx context.Context, labels []string) error {
	for _, label := range labels {
		_, err := s.statuses.FindByLabel(ctx, label)
		if err == nil {
			continue
		}
		if !apperrors.IsNotFoundError(err) {
			return fmt.Errorf("failed to look up status %q: %w", label, err)
		}

		st, err := status.NewStatus(label)
		if err != nil {
			return fmt.Errorf("invalid seed status %q: %w", label, err)
		}
		if err := s.statuses.Save(ctx, st); err != nil {
			return fmt.Errorf("failed to seed status %q: %w", label, err)
		}
		s.logger.Infow("status seeded", "label", label)
	}
	return nil
}

func (s *Seeder) seedUsers(ctx context.Context, specs []UserSpec) error {
	for _, spec := range specs {
		_, err := s.users.FindByEmail(ctx, spec.Email)
		if err == nil {
			continue
		}
		if !apperrors.IsNotFoundError(err) {
			return fmt.Errorf("failed to look up user %q: %w", spec.Email, err)
		}

		hash, err := s.hasher.Hash(spec.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password for %q: %w", spec.Email, err)
		}

		u, err := user.NewUser(spec.Email, hash, authorization.ParseUserRole(spec.Role))
		if err != nil {
			return fmt.Errorf("invalid seed user %q: %w", spec.Email, err)
		}
		if err := s.users.Save(ctx, u); err != nil {
			return fmt.Errorf("failed to seed user %q: %w", spec.Email, err)
		}
		s.logger.Infow("user seeded", "email", spec.Email, "role", spec.Role)
	}
	return nil
}
