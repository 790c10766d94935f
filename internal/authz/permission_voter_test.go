package authz

import (
	"testing"

	"isms-admin/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestPermissionVoterSuperAdmin(t *testing.T) {
	super := newActor(models.RoleSuperAdmin, nil)
	voter := PermissionVoter{}

	assert.Equal(t, Grant, voter.Vote(super, nil, PermissionBackupRestore))
	assert.Equal(t, Grant, voter.Vote(super, nil, "mfa.reset"))
}

func TestPermissionVoterAdminBackupRestricted(t *testing.T) {
	admin := newActor(models.RoleAdmin, nil)
	voter := PermissionVoter{}

	// восстановление из копии — только super_admin
	assert.Equal(t, Deny, voter.Vote(admin, nil, PermissionBackupRestore))
	assert.Equal(t, Grant, voter.Vote(admin, nil, "backup.create"))
	assert.Equal(t, Grant, voter.Vote(admin, nil, "session.terminate"))
}

func TestPermissionVoterCustomRoles(t *testing.T) {
	voter := PermissionVoter{}

	granted := actorWithPermissions("audit.view", "compliance.export")
	assert.Equal(t, Grant, voter.Vote(granted, nil, "audit.view"))
	assert.Equal(t, Grant, voter.Vote(granted, nil, "compliance.export"))
	assert.Equal(t, Deny, voter.Vote(granted, nil, "audit.export"))
	assert.Equal(t, Deny, voter.Vote(granted, nil, PermissionBackupRestore))
}

func TestPermissionVoterUnknownAbstains(t *testing.T) {
	super := newActor(models.RoleSuperAdmin, nil)
	voter := PermissionVoter{}

	assert.Equal(t, Abstain, voter.Vote(super, nil, "galaxy.destroy"))
	assert.Equal(t, Abstain, voter.Vote(super, nil, ""))
}

func TestCatalog(t *testing.T) {
	cat := Catalog()

	for _, category := range []string{"admin", "user", "tenant", "session", "mfa", "module", "role", "compliance", "audit", "monitoring", "backup"} {
		assert.NotEmpty(t, cat[category], category)
	}
	assert.Contains(t, cat["backup"], PermissionBackupRestore)

	// копия не должна влиять на каталог
	cat["backup"][0] = "mutated"
	assert.True(t, KnownPermission("backup.create"))
	assert.False(t, KnownPermission("mutated"))
}
