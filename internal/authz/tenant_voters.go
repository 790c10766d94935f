package authz

import "isms-admin/internal/models"

// decideTenantScoped — общая таблица решений для сущностей, привязанных
// к тенанту: администратор может всё; остальные видят и правят только в
// своём тенанте, а удалять не могут вовсе.
func decideTenantScoped(actor *Actor, subjectTenant *uint, attribute string) Decision {
	if actor.isAdmin() {
		return Grant
	}
	switch attribute {
	case ActionView, ActionEdit:
		if actor != nil && actor.User != nil && actor.User.SameTenant(subjectTenant) {
			return Grant
		}
		return Deny
	case ActionDelete:
		return Deny
	}
	return Abstain
}

// AssetVoter решает доступ к активам.
type AssetVoter struct{}

func (AssetVoter) Vote(actor *Actor, subject any, attribute string) Decision {
	if attribute != ActionView && attribute != ActionEdit && attribute != ActionDelete {
		return Abstain
	}
	asset, ok := subject.(*models.Asset)
	if !ok {
		return Abstain
	}
	return decideTenantScoped(actor, asset.TenantID, attribute)
}

// ControlVoter решает доступ к контролям.
type ControlVoter struct{}

func (ControlVoter) Vote(actor *Actor, subject any, attribute string) Decision {
	if attribute != ActionView && attribute != ActionEdit && attribute != ActionDelete {
		return Abstain
	}
	control, ok := subject.(*models.Control)
	if !ok {
		return Abstain
	}
	return decideTenantScoped(actor, control.TenantID, attribute)
}

// IncidentVoter решает доступ к инцидентам.
type IncidentVoter struct{}

func (IncidentVoter) Vote(actor *Actor, subject any, attribute string) Decision {
	if attribute != ActionView && attribute != ActionEdit && attribute != ActionDelete {
		return Abstain
	}
	incident, ok := subject.(*models.Incident)
	if !ok {
		return Abstain
	}
	return decideTenantScoped(actor, incident.TenantID, attribute)
}

// RiskVoter решает доступ к рискам.
type RiskVoter struct{}

func (RiskVoter) Vote(actor *Actor, subject any, attribute string) Decision {
	if attribute != ActionView && attribute != ActionEdit && attribute != ActionDelete {
		return Abstain
	}
	risk, ok := subject.(*models.Risk)
	if !ok {
		return Abstain
	}
	return decideTenantScoped(actor, risk.TenantID, attribute)
}
