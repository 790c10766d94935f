package authz

import (
	"testing"

	"isms-admin/internal/models"

	"github.com/stretchr/testify/assert"
)

func documentOf(uploaderID uint, uploaderTenant *uint) *models.Document {
	uploader := &models.User{TenantID: uploaderTenant}
	uploader.ID = uploaderID
	return &models.Document{UploaderID: uploaderID, Uploader: uploader}
}

func TestDocumentVoterAdmin(t *testing.T) {
	admin := newActor(models.RoleAdmin, uintPtr(1))
	doc := documentOf(99, uintPtr(5))

	voter := DocumentVoter{}
	assert.Equal(t, Grant, voter.Vote(admin, doc, ActionView))
	assert.Equal(t, Grant, voter.Vote(admin, doc, ActionEdit))
	assert.Equal(t, Grant, voter.Vote(admin, doc, ActionDelete))
}

func TestDocumentVoterUploader(t *testing.T) {
	actor := newActor(models.RoleAnalyst, uintPtr(1))
	own := documentOf(actor.User.ID, uintPtr(1))

	voter := DocumentVoter{}
	assert.Equal(t, Grant, voter.Vote(actor, own, ActionView))
	assert.Equal(t, Grant, voter.Vote(actor, own, ActionEdit))
	// удалять не может даже автор
	assert.Equal(t, Deny, voter.Vote(actor, own, ActionDelete))
}

func TestDocumentVoterSameTenant(t *testing.T) {
	actor := newActor(models.RoleAnalyst, uintPtr(3))
	colleague := documentOf(77, uintPtr(3))

	voter := DocumentVoter{}
	assert.Equal(t, Grant, voter.Vote(actor, colleague, ActionView))
	// правит только загрузивший
	assert.Equal(t, Deny, voter.Vote(actor, colleague, ActionEdit))
}

func TestDocumentVoterForeignTenant(t *testing.T) {
	actor := newActor(models.RoleAnalyst, uintPtr(3))
	foreign := documentOf(77, uintPtr(4))

	voter := DocumentVoter{}
	assert.Equal(t, Deny, voter.Vote(actor, foreign, ActionView))
	assert.Equal(t, Deny, voter.Vote(actor, foreign, ActionEdit))
	assert.Equal(t, Deny, voter.Vote(actor, foreign, ActionDelete))
}

func TestDocumentVoterAbstain(t *testing.T) {
	actor := newActor(models.RoleAnalyst, uintPtr(3))
	voter := DocumentVoter{}

	assert.Equal(t, Abstain, voter.Vote(actor, documentOf(1, nil), ActionCreate))
	assert.Equal(t, Abstain, voter.Vote(actor, &models.Asset{}, ActionView))
}
