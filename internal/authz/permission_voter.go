package authz

// PermissionBackupRestore доступно только super_admin.
const PermissionBackupRestore = "backup.restore"

// catalog — все известные идентификаторы прав по категориям.
// Используется административным интерфейсом и PermissionVoter.
var catalog = map[string][]string{
	"admin": {
		"admin.access", "admin.settings",
	},
	"user": {
		"user.view", "user.create", "user.edit", "user.delete", "user.manage_roles",
	},
	"tenant": {
		"tenant.view", "tenant.create", "tenant.edit", "tenant.delete",
	},
	"session": {
		"session.view", "session.terminate",
	},
	"mfa": {
		"mfa.enforce", "mfa.reset",
	},
	"module": {
		"module.enable", "module.disable",
	},
	"role": {
		"role.view", "role.create", "role.edit", "role.delete",
	},
	"compliance": {
		"compliance.view", "compliance.edit", "compliance.export",
	},
	"audit": {
		"audit.view", "audit.export",
	},
	"monitoring": {
		"monitoring.view",
	},
	"backup": {
		"backup.create", PermissionBackupRestore,
	},
}

// Catalog возвращает копию каталога прав, сгруппированного по категориям.
func Catalog() map[string][]string {
	out := make(map[string][]string, len(catalog))
	for category, names := range catalog {
		out[category] = append([]string(nil), names...)
	}
	return out
}

// KnownPermission — входит ли идентификатор в каталог.
func KnownPermission(name string) bool {
	for _, names := range catalog {
		for _, n := range names {
			if n == name {
				return true
			}
		}
	}
	return false
}

// PermissionVoter — проверка возможности, не привязанная к конкретной сущности:
// действие здесь — имя права из каталога. super_admin может всё, admin — всё,
// кроме восстановления из резервной копии, остальные — по кастомным ролям.
type PermissionVoter struct{}

func (PermissionVoter) Vote(actor *Actor, subject any, attribute string) Decision {
	if !KnownPermission(attribute) {
		return Abstain
	}

	if actor == nil || actor.User == nil {
		return Deny
	}
	if actor.User.IsSuperAdmin() {
		return Grant
	}
	if actor.User.IsAdmin() {
		if attribute == PermissionBackupRestore {
			return Deny
		}
		return Grant
	}

	if actor.HasPermission(attribute) {
		return Grant
	}
	return Deny
}
