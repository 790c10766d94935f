package middleware

import (
	"testing"

	"isms-admin/internal/authz"
	"isms-admin/internal/models"

	"github.com/stretchr/testify/assert"
)

type fixedVoter struct {
	decision authz.Decision
}

func (f fixedVoter) Vote(*authz.Actor, any, string) authz.Decision {
	return f.decision
}

func TestDecide(t *testing.T) {
	u := &models.User{Role: models.RoleViewer, Active: true}
	u.ID = 1
	actor := authz.NewActor(u)

	grant := fixedVoter{authz.Grant}
	deny := fixedVoter{authz.Deny}
	abstain := fixedVoter{authz.Abstain}

	// один Grant достаточен
	assert.True(t, Decide(actor, nil, authz.ActionView, abstain, grant))
	// любой Deny перевешивает Grant
	assert.False(t, Decide(actor, nil, authz.ActionView, grant, deny))
	assert.False(t, Decide(actor, nil, authz.ActionView, deny, grant))
	// одни воздержавшиеся — отказ
	assert.False(t, Decide(actor, nil, authz.ActionView, abstain, abstain))
	// без voters доступа нет
	assert.False(t, Decide(actor, nil, authz.ActionView))
}
