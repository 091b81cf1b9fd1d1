package permission

import (
	"io"
	"log/slog"
	"testing"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gestiontickets/internal/shared/logger"
)

const testModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

func newSeededEnforcer(t *testing.T) *casbin.Enforcer {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	adapter, err := gormadapter.NewAdapterByDB(gormDB)
	require.NoError(t, err)

	m, err := model.NewModelFromString(testModel)
	require.NoError(t, err)

	enforcer, err := casbin.NewEnforcer(m, adapter)
	require.NoError(t, err)

	log := logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, InitDefaultPermissions(enforcer, log))
	return enforcer
}

func TestInitDefaultPermissions_MemberTicketAccess(t *testing.T) {
	enforcer := newSeededEnforcer(t)

	// an authenticated member may manage tickets; ownership is checked
	// later in the usecases
	for _, action := range []string{"create", "read", "update", "delete", "append_history"} {
		allowed, err := enforcer.Enforce("member", "ticket", action)
		require.NoError(t, err)
		assert.True(t, allowed, "member should be allowed ticket %s", action)
	}
}

func TestInitDefaultPermissions_MemberDirectoryReadOnly(t *testing.T) {
	enforcer := newSeededEnforcer(t)

	allowed, err := enforcer.Enforce("member", "member", "read")
	require.NoError(t, err)
	assert.True(t, allowed)

	for _, action := range []string{"create", "update", "delete", "import"} {
		allowed, err := enforcer.Enforce("member", "member", action)
		require.NoError(t, err)
		assert.False(t, allowed, "member should not be allowed member %s", action)
	}
}

func TestInitDefaultPermissions_AdminFullAccess(t *testing.T) {
	enforcer := newSeededEnforcer(t)

	for _, action := range []string{"create", "read", "update", "delete", "import"} {
		allowed, err := enforcer.Enforce("admin", "member", action)
		require.NoError(t, err)
		assert.True(t, allowed, "admin should be allowed member %s", action)
	}
}
