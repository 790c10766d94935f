package authz

import "isms-admin/internal/models"

// RoleVoter решает доступ к кастомным ролям. Системные роли неизменяемы
// даже для администратора.
type RoleVoter struct{}

func (RoleVoter) Vote(actor *Actor, subject any, attribute string) Decision {
	var permission string
	switch attribute {
	case ActionView:
		permission = "role.view"
	case ActionCreate:
		permission = "role.create"
	case ActionEdit:
		permission = "role.edit"
	case ActionDelete:
		permission = "role.delete"
	default:
		return Abstain
	}

	role, ok := subject.(*models.CustomRole)
	if !ok {
		return Abstain
	}

	mutation := attribute == ActionEdit || attribute == ActionDelete
	if mutation && role.IsSystem {
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
