package authz

import (
	"testing"

	"isms-admin/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestRoleVoterAdmin(t *testing.T) {
	admin := newActor(models.RoleAdmin, nil)
	voter := RoleVoter{}

	custom := &models.CustomRole{Name: "Compliance Officer"}
	assert.Equal(t, Grant, voter.Vote(admin, custom, ActionView))
	assert.Equal(t, Grant, voter.Vote(admin, custom, ActionCreate))
	assert.Equal(t, Grant, voter.Vote(admin, custom, ActionEdit))
	assert.Equal(t, Grant, voter.Vote(admin, custom, ActionDelete))
}

func TestRoleVoterSystemRoleImmutable(t *testing.T) {
	admin := newActor(models.RoleAdmin, nil)
	voter := RoleVoter{}

	system := &models.CustomRole{Name: "Security Auditor", IsSystem: true}
	// системную роль не меняет даже администратор
	assert.Equal(t, Deny, voter.Vote(admin, system, ActionEdit))
	assert.Equal(t, Deny, voter.Vote(admin, system, ActionDelete))
	// смотреть можно
	assert.Equal(t, Grant, voter.Vote(admin, system, ActionView))
}

func TestRoleVoterPermissionBased(t *testing.T) {
	voter := RoleVoter{}
	custom := &models.CustomRole{Name: "Custom"}

	granted := actorWithPermissions("role.view", "role.edit")
	assert.Equal(t, Grant, voter.Vote(granted, custom, ActionView))
	assert.Equal(t, Grant, voter.Vote(granted, custom, ActionEdit))
	assert.Equal(t, Deny, voter.Vote(granted, custom, ActionDelete))

	none := actorWithPermissions()
	assert.Equal(t, Deny, voter.Vote(none, custom, ActionView))
}

func TestRoleVoterInactiveUserDenied(t *testing.T) {
	u := &models.User{
		Role:   models.RoleViewer,
		Active: false,
		CustomRoles: []models.CustomRole{
			{Permissions: permissionsOf("role.view")},
		},
	}
	u.ID = 10
	inactive := NewActor(u)

	voter := RoleVoter{}
	assert.Equal(t, Deny, voter.Vote(inactive, &models.CustomRole{}, ActionView))
}

func TestRoleVoterSystemRoleDeniedDespitePermission(t *testing.T) {
	granted := actorWithPermissions("role.edit", "role.delete")
	system := &models.CustomRole{IsSystem: true}

	voter := RoleVoter{}
	assert.Equal(t, Deny, voter.Vote(granted, system, ActionEdit))
	assert.Equal(t, Deny, voter.Vote(granted, system, ActionDelete))
}

func TestRoleVoterAbstain(t *testing.T) {
	admin := newActor(models.RoleAdmin, nil)
	voter := RoleVoter{}

	assert.Equal(t, Abstain, voter.Vote(admin, &models.CustomRole{}, ActionManageRoles))
	assert.Equal(t, Abstain, voter.Vote(admin, &models.Asset{}, ActionView))
}
