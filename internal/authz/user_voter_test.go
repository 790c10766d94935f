package authz

import (
	"testing"

	"isms-admin/internal/models"

	"github.com/stretchr/testify/assert"
)

type fakeInitialAdmin struct {
	id uint
}

func (f fakeInitialAdmin) IsInitialAdmin(u *models.User) bool {
	return u != nil && u.ID == f.id
}

func userWithID(id uint) *models.User {
	u := &models.User{Role: models.RoleViewer, Active: true}
	u.ID = id
	return u
}

func TestUserVoterSelf(t *testing.T) {
	actor := newActor(models.RoleViewer, nil)
	self := userWithID(actor.User.ID)

	voter := UserVoter{}
	assert.Equal(t, Grant, voter.Vote(actor, self, ActionView))
	assert.Equal(t, Grant, voter.Vote(actor, self, ActionEdit))
	// себя удалить нельзя никогда
	assert.Equal(t, Deny, voter.Vote(actor, self, ActionDelete))
}

func TestUserVoterAdminCannotDeleteSelf(t *testing.T) {
	admin := newActor(models.RoleAdmin, nil)
	self := userWithID(admin.User.ID)

	voter := UserVoter{}
	assert.Equal(t, Deny, voter.Vote(admin, self, ActionDelete))
}

func TestUserVoterInitialAdminUndeletable(t *testing.T) {
	admin := newActor(models.RoleSuperAdmin, nil)
	target := userWithID(7)

	voter := UserVoter{InitialAdmin: fakeInitialAdmin{id: 7}}
	// первоначального админа не удалить даже супер-админу
	assert.Equal(t, Deny, voter.Vote(admin, target, ActionDelete))

	other := userWithID(8)
	assert.Equal(t, Grant, voter.Vote(admin, other, ActionDelete))
}

func TestUserVoterAdminManagesOthers(t *testing.T) {
	admin := newActor(models.RoleAdmin, nil)
	target := userWithID(7)

	voter := UserVoter{}
	assert.Equal(t, Grant, voter.Vote(admin, target, ActionView))
	assert.Equal(t, Grant, voter.Vote(admin, target, ActionEdit))
	assert.Equal(t, Grant, voter.Vote(admin, target, ActionCreate))
	assert.Equal(t, Grant, voter.Vote(admin, target, ActionManageRoles))
}

func TestUserVoterPermissionBased(t *testing.T) {
	voter := UserVoter{}
	target := userWithID(7)

	granted := actorWithPermissions("user.view", "user.manage_roles")
	assert.Equal(t, Grant, voter.Vote(granted, target, ActionView))
	assert.Equal(t, Grant, voter.Vote(granted, target, ActionManageRoles))
	assert.Equal(t, Deny, voter.Vote(granted, target, ActionEdit))

	none := actorWithPermissions()
	assert.Equal(t, Deny, voter.Vote(none, target, ActionView))
}

func TestUserVoterInactiveActorDenied(t *testing.T) {
	u := &models.User{
		Role:   models.RoleViewer,
		Active: false,
		CustomRoles: []models.CustomRole{
			{Permissions: permissionsOf("user.view")},
		},
	}
	u.ID = 10
	inactive := NewActor(u)

	voter := UserVoter{}
	assert.Equal(t, Deny, voter.Vote(inactive, userWithID(7), ActionView))
	// но себя неактивный пользователь видеть может
	assert.Equal(t, Grant, voter.Vote(inactive, userWithID(10), ActionView))
}

func TestUserVoterAbstain(t *testing.T) {
	admin := newActor(models.RoleAdmin, nil)
	voter := UserVoter{}

	assert.Equal(t, Abstain, voter.Vote(admin, userWithID(7), "IMPERSONATE"))
	assert.Equal(t, Abstain, voter.Vote(admin, &models.Document{}, ActionView))
}
