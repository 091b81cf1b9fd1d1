package permission

import (
	"fmt"

	"github.com/casbin/casbin/v2"

	"gestiontickets/internal/shared/logger"
)

// InitDefaultPermissions seeds the role policies. Admins manage the member
// directory, the status catalog and all tickets; members may read the member
// directory and create, edit, delete and follow up on tickets. Ownership of
// the targeted ticket is checked in the usecases.
func InitDefaultPermissions(enforcer *casbin.Enforcer, log logger.Interface) error {
	policies := [][]string{
		// Admin permissions - full access
		{"admin", "member", "create"},
		{"admin", "member", "read"},
		{"admin", "member", "update"},
		{"admin", "member", "delete"},
		{"admin", "member", "import"},
		{"admin", "ticket", "create"},
		{"admin", "ticket", "read"},
		{"admin", "ticket", "update"},
		{"admin", "ticket", "delete"},
		{"admin", "ticket", "append_history"},
		{"admin", "status", "read"},

		// Member permissions - manage own claims, browse the directory
		{"member", "member", "read"},
		{"member", "ticket", "create"},
		{"member", "ticket", "read"},
		{"member", "ticket", "update"},
		{"member", "ticket", "delete"},
		{"member", "ticket", "append_history"},
		{"member", "status", "read"},
	}

	for _, policy := range policies {
		_, err := enforcer.AddPolicy(policy)
		if err != nil {
			log.Errorw("failed to add permission policy",
				"error", err,
				"role", policy[0],
				"resource", policy[1],
				"action", policy[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
	}

	if err := enforcer.SavePolicy(); err != nil {
		log.Error("failed to save permissions", "error", err)
		return fmt.Errorf("failed to save permissions: %w", err)
	}

	log.Info("default permissions initialized successfully")
	return nil
}
