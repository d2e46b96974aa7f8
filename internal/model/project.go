package model

import "time"

type Project struct {
	ID                 string
	Name               string
	AuthWebhookURL     string
	AuthWebhookMethods []string
	PublicKey          string
	SecretKey          string
	CreatedAt          time.Time
}

// UpdatableProjectFields is a partial update; nil fields are left untouched.
type UpdatableProjectFields struct {
	Name               *string   `validate:"omitempty,projectname"`
	AuthWebhookURL     *string   `validate:"omitempty,url"`
	AuthWebhookMethods *[]string `validate:"omitempty,dive,authmethod"`
}

func (f UpdatableProjectFields) IsEmpty() bool {
	return f.Name == nil && f.AuthWebhookURL == nil && f.AuthWebhookMethods == nil
}

// Apply returns p with every non-nil field of f set.
func (f UpdatableProjectFields) Apply(p Project) Project {
	if f.Name != nil {
		p.Name = *f.Name
	}
	if f.AuthWebhookURL != nil {
		p.AuthWebhookURL = *f.AuthWebhookURL
	}
	if f.AuthWebhookMethods != nil {
		p.AuthWebhookMethods = append([]string(nil), (*f.AuthWebhookMethods)...)
	}
	return p
}

// Auth webhook methods a project may subscribe to.
var AuthWebhookMethods = []string{
	"ActivateClient",
	"DeactivateClient",
	"AttachDocument",
	"DetachDocument",
	"RemoveDocument",
	"PushPull",
	"WatchDocuments",
	"Broadcast",
}
