package service

import (
	"context"
	"fmt"

	"docadmin/internal/adapter/out/storage"
	"docadmin/internal/model"
	"docadmin/pkg/pagination"
)

const (
	DefaultDocumentsLimit = 10
	MaxDocumentsLimit     = 100
)

//go:generate mockgen -source=documents.go -destination=./document_storage_mock.go -package=service
type DocumentStorage interface {
	CreateDocument(ctx context.Context, doc model.Document) (model.Document, error)
	GetDocumentByKey(ctx context.Context, projectID, key string) (model.Document, error)
	// ListDocuments returns the first documents of a project, id ascending.
	ListDocuments(ctx context.Context, projectID string, limit int) ([]model.Document, error)
	// ListDocumentsWithCursor returns documents strictly beyond the cursor, id ascending.
	ListDocumentsWithCursor(ctx context.Context, params storage.ListDocumentsParams) ([]model.Document, error)
	// HasDocumentsBeyond reports whether any document lies strictly beyond id in direction.
	HasDocumentsBeyond(ctx context.Context, projectID, id string, direction pagination.Direction) (bool, error)
}

type DocumentService struct {
	documentStorage DocumentStorage
	projectStorage  ProjectStorage

	defaultLimit int
	maxLimit     int
}

func NewDocumentService(documentStorage DocumentStorage, projectStorage ProjectStorage) *DocumentService {
	return &DocumentService{
		documentStorage: documentStorage,
		projectStorage:  projectStorage,
		defaultLimit:    DefaultDocumentsLimit,
		maxLimit:        MaxDocumentsLimit,
	}
}

// WithLimits overrides the default and maximum page sizes. Non-positive values are ignored.
func (s *DocumentService) WithLimits(defaultLimit, maxLimit int) *DocumentService {
	if maxLimit > 0 {
		s.maxLimit = maxLimit
	}
	if defaultLimit > 0 {
		s.defaultLimit = min(defaultLimit, s.maxLimit)
	}
	return s
}

func (s *DocumentService) CreateDocument(ctx context.Context, req CreateDocumentRequest) (model.DocumentSummary, error) {
	if err := validate.Struct(req); err != nil {
		return model.DocumentSummary{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	project, err := s.projectStorage.GetProjectByName(ctx, req.ProjectName)
	if err != nil {
		return model.DocumentSummary{}, err
	}

	doc, err := s.documentStorage.CreateDocument(ctx, model.Document{
		ProjectID: project.ID,
		Key:       req.Key,
		Snapshot:  req.Snapshot,
	})
	if err != nil {
		return model.DocumentSummary{}, err
	}
	return doc.Summary(), nil
}

func (s *DocumentService) GetDocument(ctx context.Context, projectName, key string) (model.DocumentSummary, error) {
	if projectName == "" || key == "" {
		return model.DocumentSummary{}, fmt.Errorf("project name and key are required: %w", ErrInvalidRequest)
	}

	project, err := s.projectStorage.GetProjectByName(ctx, projectName)
	if err != nil {
		return model.DocumentSummary{}, err
	}

	doc, err := s.documentStorage.GetDocumentByKey(ctx, project.ID, key)
	if err != nil {
		return model.DocumentSummary{}, err
	}
	return doc.Summary(), nil
}

func (s *DocumentService) ListDocuments(ctx context.Context, in ListDocumentsRequest) (pagination.Page[model.DocumentSummary], error) {
	var (
		docs []model.Document
		err  error
		page pagination.Page[model.DocumentSummary]
	)

	if err := validateListDocuments(in); err != nil {
		return page, err
	}

	project, err := s.projectStorage.GetProjectByName(ctx, in.ProjectName)
	if err != nil {
		return page, err
	}

	limit := in.PageSize
	if limit <= 0 {
		limit = s.defaultLimit
	}
	limit = min(limit, s.maxLimit)
	peek := limit + 1

	direction := pagination.DirectionAfter
	switch {
	case in.Cursor == nil:
		docs, err = s.documentStorage.ListDocuments(ctx, project.ID, peek)
		if err != nil {
			return page, err
		}

	default:
		direction = in.Cursor.Direction
		docs, err = s.documentStorage.ListDocumentsWithCursor(ctx, toListDocumentsParams(project.ID, *in.Cursor, peek))
		if err != nil {
			return page, err
		}
	}

	if len(docs) == 0 {
		return page, nil
	}

	switch direction {
	case pagination.DirectionBefore:
		// the peeked extra row is the smallest one
		if len(docs) > limit {
			page.HasPrevious = true
			docs = docs[len(docs)-limit:]
		}
		page.HasNext, err = s.documentStorage.HasDocumentsBeyond(ctx, project.ID, docs[len(docs)-1].ID, pagination.DirectionAfter)
		if err != nil {
			return pagination.Page[model.DocumentSummary]{}, err
		}

	default:
		if len(docs) > limit {
			page.HasNext = true
			docs = docs[:limit]
		}
		if in.Cursor != nil {
			page.HasPrevious, err = s.documentStorage.HasDocumentsBeyond(ctx, project.ID, docs[0].ID, pagination.DirectionBefore)
			if err != nil {
				return pagination.Page[model.DocumentSummary]{}, err
			}
		}
	}

	page.Items = summaries(docs)
	return page, nil
}
