// Package authz — движок авторизации: независимые "voters" с трёхзначным
// результатом Grant / Deny / Abstain. Политика объединения решений нескольких
// voters остаётся на стороне вызывающего кода.
package authz

type Decision int

const (
	// Abstain — voter не имеет мнения по данной паре субъект/действие.
	Abstain Decision = iota
	Grant
	Deny
)

func (d Decision) String() string {
	switch d {
	case Grant:
		return "grant"
	case Deny:
		return "deny"
	default:
		return "abstain"
	}
}

// Действия, которые понимают voters.
const (
	ActionView        = "VIEW"
	ActionEdit        = "EDIT"
	ActionDelete      = "DELETE"
	ActionCreate      = "CREATE"
	ActionManageRoles = "MANAGE_ROLES"
)

// Voter — функция принятия решения без состояния: пользователь, субъект,
// действие → решение. Для незнакомого субъекта или действия всегда Abstain,
// ошибок и паник не бывает.
type Voter interface {
	Vote(actor *Actor, subject any, attribute string) Decision
}
