package service

import (
	"fmt"
	"regexp"
	"slices"

	"docadmin/internal/adapter/out/storage"
	"docadmin/internal/model"
	"docadmin/pkg/pagination"

	"github.com/go-playground/validator/v10"
)

var projectNameRe = regexp.MustCompile(`^[a-z0-9\-._~]{2,30}$`)

// Document keys are a single path segment of the document detail route.
var documentKeyRe = regexp.MustCompile(`^[^/]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	must(v.RegisterValidation("projectname", func(fl validator.FieldLevel) bool {
		return projectNameRe.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("documentkey", func(fl validator.FieldLevel) bool {
		return documentKeyRe.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("authmethod", func(fl validator.FieldLevel) bool {
		return slices.Contains(model.AuthWebhookMethods, fl.Field().String())
	}))
	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

type CreateProjectRequest struct {
	Name string `validate:"required,projectname"`
}

type CreateDocumentRequest struct {
	ProjectName string `validate:"required"`
	Key         string `validate:"required,max=120,documentkey"`
	Snapshot    string
}

type ListDocumentsRequest struct {
	ProjectName string `validate:"required"`
	Cursor      *pagination.Cursor
	PageSize    int
}

func validateListDocuments(in ListDocumentsRequest) error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if in.Cursor != nil {
		if err := in.Cursor.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
	}
	return nil
}

func toListDocumentsParams(projectID string, cursor pagination.Cursor, limit int) storage.ListDocumentsParams {
	return storage.ListDocumentsParams{
		ProjectID: projectID,
		Cursor:    cursor,
		Limit:     limit,
	}
}

func summaries(docs []model.Document) []model.DocumentSummary {
	out := make([]model.DocumentSummary, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.Summary())
	}
	return out
}
