package adminapi

import (
	"reflect"
	"time"

	"docadmin/internal/model"
	"docadmin/pkg/pagination"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// present fails only for a nil pointer; zero values are accepted.
	if err := v.RegisterValidation("present", func(fl validator.FieldLevel) bool {
		return fl.Field().Kind() != reflect.Ptr
	}, true); err != nil {
		panic(err)
	}
	return v
}

type documentSummaryJSON struct {
	ID         *string `json:"id" validate:"present,required"`
	Key        *string `json:"key" validate:"present,required"`
	Snapshot   *string `json:"snapshot" validate:"present"`
	CreatedAt  *int64  `json:"createdAt" validate:"present"`
	AccessedAt *int64  `json:"accessedAt" validate:"present"`
	UpdatedAt  *int64  `json:"updatedAt" validate:"present"`
}

func (d documentSummaryJSON) toModel() model.DocumentSummary {
	return model.DocumentSummary{
		ID:         *d.ID,
		Key:        *d.Key,
		Snapshot:   *d.Snapshot,
		CreatedAt:  fromEpoch(*d.CreatedAt),
		AccessedAt: fromEpoch(*d.AccessedAt),
		UpdatedAt:  fromEpoch(*d.UpdatedAt),
	}
}

type documentPageJSON struct {
	Documents   []documentSummaryJSON `json:"documents" validate:"required,dive"`
	HasPrevious *bool                 `json:"hasPrevious" validate:"present"`
	HasNext     *bool                 `json:"hasNext" validate:"present"`
}

func (p documentPageJSON) toModel() pagination.Page[model.DocumentSummary] {
	items := make([]model.DocumentSummary, 0, len(p.Documents))
	for _, d := range p.Documents {
		items = append(items, d.toModel())
	}
	return pagination.Page[model.DocumentSummary]{
		Items:       items,
		HasPrevious: *p.HasPrevious,
		HasNext:     *p.HasNext,
	}
}

type projectJSON struct {
	ID                 *string   `json:"id" validate:"present,required"`
	Name               *string   `json:"name" validate:"present,required"`
	AuthWebhookURL     *string   `json:"authWebhookUrl" validate:"present"`
	AuthWebhookMethods *[]string `json:"authWebhookMethods" validate:"present"`
	PublicKey          *string   `json:"publicKey" validate:"present"`
	SecretKey          *string   `json:"secretKey" validate:"present"`
	CreatedAt          *int64    `json:"createdAt" validate:"present"`
}

func (p projectJSON) toModel() model.Project {
	return model.Project{
		ID:                 *p.ID,
		Name:               *p.Name,
		AuthWebhookURL:     *p.AuthWebhookURL,
		AuthWebhookMethods: *p.AuthWebhookMethods,
		PublicKey:          *p.PublicKey,
		SecretKey:          *p.SecretKey,
		CreatedAt:          fromEpoch(*p.CreatedAt),
	}
}

type projectListJSON struct {
	Projects []projectJSON `json:"projects" validate:"required,dive"`
}

type createProjectJSON struct {
	Name string `json:"name"`
}

type updateProjectJSON struct {
	Name               *string   `json:"name,omitempty"`
	AuthWebhookURL     *string   `json:"authWebhookUrl,omitempty"`
	AuthWebhookMethods *[]string `json:"authWebhookMethods,omitempty"`
}

type createDocumentJSON struct {
	Key      string `json:"key"`
	Snapshot string `json:"snapshot"`
}

type errorJSON struct {
	Error string `json:"error"`
}

func fromEpoch(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}
