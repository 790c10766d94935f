package models

import "gorm.io/gorm"

// CustomRole — настраиваемая роль с набором прав. Системные роли
// создаются при инициализации и не редактируются даже администратором.
type CustomRole struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex;size:100;not null"`
	Description string `gorm:"type:text"`
	IsSystem    bool   `gorm:"default:false"`

	Permissions []Permission `gorm:"many2many:role_permissions;"`
}

// Permission — именованное право вида "entity.action" (например "asset.view").
type Permission struct {
	gorm.Model
	Name     string `gorm:"uniqueIndex;size:100;not null"`
	Category string `gorm:"size:50"`
}
