package models

import "gorm.io/gorm"

// Tenant — организационная единица (компания/филиал). Образует дерево
// головная организация → дочерние структуры.
type Tenant struct {
	gorm.Model
	Name              string `gorm:"size:255;not null"`
	IsCorporateParent bool   `gorm:"default:false"`

	ParentID *uint
	Parent   *Tenant `gorm:"foreignKey:ParentID"`

	Subsidiaries []*Tenant `gorm:"foreignKey:ParentID"`
}

// RootParent поднимается по дереву до корня. Для корня возвращает сам тенант.
func (t *Tenant) RootParent() *Tenant {
	current := t
	for current.Parent != nil {
		current = current.Parent
	}
	return current
}

// AllSubsidiaries — полное транзитивное замыкание дочерних структур
// (связи должны быть загружены заранее).
func (t *Tenant) AllSubsidiaries() []*Tenant {
	var result []*Tenant
	for _, sub := range t.Subsidiaries {
		result = append(result, sub)
		result = append(result, sub.AllSubsidiaries()...)
	}
	return result
}

// AllAncestors — цепочка предков, начиная с непосредственного родителя.
func (t *Tenant) AllAncestors() []*Tenant {
	var result []*Tenant
	for current := t.Parent; current != nil; current = current.Parent {
		result = append(result, current)
	}
	return result
}

// HierarchyDepth — число переходов до корня (корень = 0).
func (t *Tenant) HierarchyDepth() int {
	depth := 0
	for current := t.Parent; current != nil; current = current.Parent {
		depth++
	}
	return depth
}

// IsDescendantOf — входит ли тенант в поддерево other.
func (t *Tenant) IsDescendantOf(other *Tenant) bool {
	if other == nil {
		return false
	}
	for current := t.Parent; current != nil; current = current.Parent {
		if current.ID == other.ID {
			return true
		}
	}
	return false
}
