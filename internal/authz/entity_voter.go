package authz

import (
	"reflect"
	"strings"
)

// EntityVoter — запасной voter для любых сущностей без собственного voter.
// Имя права выводится из типа субъекта: "{имя типа в нижнем регистре}.{действие}",
// например *models.Supplier + VIEW → "supplier.view".
type EntityVoter struct{}

func (EntityVoter) Vote(actor *Actor, subject any, attribute string) Decision {
	switch attribute {
	case ActionView, ActionEdit, ActionDelete, ActionCreate:
	default:
		return Abstain
	}
	if subject == nil {
		return Abstain
	}

	if actor.isAdmin() && (attribute == ActionView || attribute == ActionEdit) {
		return Grant
	}
	if !actor.isActive() {
		return Deny
	}

	if actor.HasPermission(permissionFor(subject, attribute)) {
		return Grant
	}
	return Deny
}

func permissionFor(subject any, attribute string) string {
	t := reflect.TypeOf(subject)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return strings.ToLower(t.Name()) + "." + strings.ToLower(attribute)
}

// Сущности, доступ к которым решает EntityVoter. Выводимые из них права
// ("supplier.edit" и т.п.) в каталог возможностей не входят, но должны
// назначаться кастомным ролям наравне с ним — иначе не-администратору
// такие маршруты недоступны в принципе.
var entityPermissionSubjects = []string{
	"supplier",
	"businesscontinuityplan",
	"compliancemapping",
	"ismsobjective",
	"patch",
}

var entityPermissionActions = []string{"view", "edit", "delete", "create"}

// EntityPermissions — полный перечень выводимых прав для интерфейса ролей.
func EntityPermissions() []string {
	out := make([]string, 0, len(entityPermissionSubjects)*len(entityPermissionActions))
	for _, subject := range entityPermissionSubjects {
		for _, action := range entityPermissionActions {
			out = append(out, subject+"."+action)
		}
	}
	return out
}

// AssignablePermission — можно ли назначить право кастомной роли:
// каталог возможностей плюс права, выводимые EntityVoter-ом.
func AssignablePermission(name string) bool {
	if KnownPermission(name) {
		return true
	}
	for _, entityName := range EntityPermissions() {
		if name == entityName {
			return true
		}
	}
	return false
}
