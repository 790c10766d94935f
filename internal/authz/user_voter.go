package authz

import "isms-admin/internal/models"

// InitialAdminChecker — внешний сервис, знающий, кто первоначальный
// администратор системы. Его учётную запись нельзя удалить ни при каких правах.
type InitialAdminChecker interface {
	IsInitialAdmin(u *models.User) bool
}

// UserVoter решает доступ к учётным записям. Себя можно смотреть и править
// всегда, удалить себя нельзя никогда.
type UserVoter struct {
	InitialAdmin InitialAdminChecker
}

func (v UserVoter) Vote(actor *Actor, subject any, attribute string) Decision {
	var permission string
	switch attribute {
	case ActionView:
		permission = "user.view"
	case ActionEdit:
		permission = "user.edit"
	case ActionCreate:
		permission = "user.create"
	case ActionDelete:
		permission = "user.delete"
	case ActionManageRoles:
		permission = "user.manage_roles"
	default:
		return Abstain
	}

	target, ok := subject.(*models.User)
	if !ok {
		return Abstain
	}

	if actor == nil || actor.User == nil {
		return Deny
	}
	self := actor.User.ID == target.ID

	if attribute == ActionDelete {
		if self {
			return Deny
		}
		if v.InitialAdmin != nil && v.InitialAdmin.IsInitialAdmin(target) {
			return Deny
		}
		if actor.isAdmin() {
			return Grant
		}
		if actor.isActive() && actor.HasPermission(permission) {
			return Grant
		}
		return Deny
	}

	if self && (attribute == ActionView || attribute == ActionEdit) {
		return Grant
	}
	if actor.isAdmin() {
		return Grant
	}
	if actor.isActive() && actor.HasPermission(permission) {
		return Grant
	}
	return Deny
}
