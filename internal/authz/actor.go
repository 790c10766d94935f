package authz

import "isms-admin/internal/models"

// Actor — пользователь в контексте авторизации. Права из кастомных ролей
// разворачиваются в плоский набор один раз при создании, дальше каждая
// проверка — поиск по множеству.
type Actor struct {
	User *models.User

	permissions map[string]struct{}
}

func NewActor(u *models.User) *Actor {
	a := &Actor{User: u, permissions: map[string]struct{}{}}
	if u == nil {
		return a
	}
	for _, role := range u.CustomRoles {
		for _, perm := range role.Permissions {
			a.permissions[perm.Name] = struct{}{}
		}
	}
	return a
}

func (a *Actor) HasPermission(name string) bool {
	_, ok := a.permissions[name]
	return ok
}

// isAdmin безопасен для nil-пользователя (анонимный запрос).
func (a *Actor) isAdmin() bool {
	return a != nil && a.User != nil && a.User.IsAdmin()
}

func (a *Actor) isActive() bool {
	return a != nil && a.User != nil && a.User.Active
}
