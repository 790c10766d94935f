package models

import "gorm.io/gorm"

type UserRole string

const (
	RoleSuperAdmin UserRole = "super_admin"
	RoleAdmin      UserRole = "admin"
	RoleAnalyst    UserRole = "analyst"
	RoleViewer     UserRole = "viewer"
)

// Символьные роли (базовая роль есть у каждого пользователя).
const (
	RoleNameUser       = "ROLE_USER"
	RoleNameAdmin      = "ROLE_ADMIN"
	RoleNameSuperAdmin = "ROLE_SUPER_ADMIN"
)

type User struct {
	gorm.Model
	Username     string   `gorm:"uniqueIndex;size:50;not null"`
	PasswordHash string   `gorm:"not null"`
	Role         UserRole `gorm:"type:varchar(20);not null"`
	Active       bool     `gorm:"default:true"`

	TenantID *uint
	Tenant   *Tenant

	// Назначенные кастомные роли с наборами прав.
	CustomRoles []CustomRole `gorm:"many2many:user_custom_roles;"`
}

// Roles возвращает символьные роли пользователя; ROLE_USER присутствует всегда.
func (u *User) Roles() []string {
	roles := []string{RoleNameUser}
	switch u.Role {
	case RoleSuperAdmin:
		roles = append(roles, RoleNameAdmin, RoleNameSuperAdmin)
	case RoleAdmin:
		roles = append(roles, RoleNameAdmin)
	}
	return roles
}

// IsAdmin — admin или super_admin.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}

func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

// HasPermission проверяет право по кастомным ролям пользователя.
// Для многократных проверок лучше authz.NewActor — он строит плоский набор один раз.
func (u *User) HasPermission(name string) bool {
	for _, role := range u.CustomRoles {
		for _, perm := range role.Permissions {
			if perm.Name == name {
				return true
			}
		}
	}
	return false
}

// SameTenant — принадлежит ли пользователь той же организации.
func (u *User) SameTenant(tenantID *uint) bool {
	if u.TenantID == nil || tenantID == nil {
		return false
	}
	return *u.TenantID == *tenantID
}
