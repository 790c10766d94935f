package authz

import "isms-admin/internal/models"

// DocumentVoter решает доступ к документам: документ видят загрузивший и его
// тенант, правит только загрузивший, удаляет только администратор.
type DocumentVoter struct{}

func (DocumentVoter) Vote(actor *Actor, subject any, attribute string) Decision {
	if attribute != ActionView && attribute != ActionEdit && attribute != ActionDelete {
		return Abstain
	}
	doc, ok := subject.(*models.Document)
	if !ok {
		return Abstain
	}

	if actor.isAdmin() {
		return Grant
	}
	if actor == nil || actor.User == nil {
		return Deny
	}

	isUploader := doc.UploaderID == actor.User.ID

	switch attribute {
	case ActionView:
		if isUploader {
			return Grant
		}
		if doc.Uploader != nil && actor.User.SameTenant(doc.Uploader.TenantID) {
			return Grant
		}
		return Deny
	case ActionEdit:
		if isUploader {
			return Grant
		}
		return Deny
	default: // ActionDelete
		return Deny
	}
}
