package inmemory

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"docadmin/internal/adapter/out/storage"
	"docadmin/internal/model"
	"docadmin/internal/service"
	"docadmin/pkg/pagination"

	"github.com/google/uuid"
)

type DocumentStorage struct {
	mu sync.RWMutex
	// byProject keeps each project's documents sorted by id.
	byProject map[string][]model.Document
}

func NewDocumentStorage() *DocumentStorage {
	return &DocumentStorage{
		byProject: make(map[string][]model.Document),
	}
}

func (s *DocumentStorage) CreateDocument(_ context.Context, in model.Document) (model.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.byProject[in.ProjectID]
	if slices.ContainsFunc(docs, func(d model.Document) bool { return d.Key == in.Key }) {
		return model.Document{}, service.ErrAlreadyExists
	}

	if in.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return model.Document{}, err
		}
		in.ID = id.String()
	}
	now := time.Now().UTC()
	if in.CreatedAt.IsZero() {
		in.CreatedAt = now
	}
	if in.AccessedAt.IsZero() {
		in.AccessedAt = in.CreatedAt
	}
	if in.UpdatedAt.IsZero() {
		in.UpdatedAt = in.CreatedAt
	}

	i, found := slices.BinarySearchFunc(docs, in.ID, cmpID)
	if found {
		return model.Document{}, service.ErrAlreadyExists
	}
	s.byProject[in.ProjectID] = slices.Insert(docs, i, in)
	return in, nil
}

func (s *DocumentStorage) GetDocumentByKey(_ context.Context, projectID, key string) (model.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.byProject[projectID] {
		if d.Key == key {
			return d, nil
		}
	}
	return model.Document{}, service.ErrNotFound
}

func (s *DocumentStorage) ListDocuments(_ context.Context, projectID string, limit int) ([]model.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := s.byProject[projectID]
	return slices.Clone(docs[:min(limit, len(docs))]), nil
}

func (s *DocumentStorage) ListDocumentsWithCursor(_ context.Context, params storage.ListDocumentsParams) ([]model.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := s.byProject[params.ProjectID]
	// i is the first position whose id is >= the cursor id
	i, found := slices.BinarySearchFunc(docs, params.Cursor.PreviousID, cmpID)

	switch params.Cursor.Direction {
	case pagination.DirectionAfter:
		if found {
			i++
		}
		end := min(i+params.Limit, len(docs))
		return slices.Clone(docs[i:end]), nil

	case pagination.DirectionBefore:
		start := max(i-params.Limit, 0)
		return slices.Clone(docs[start:i]), nil

	default:
		return nil, pagination.ErrDirectionUnset
	}
}

func (s *DocumentStorage) HasDocumentsBeyond(_ context.Context, projectID, id string, direction pagination.Direction) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := s.byProject[projectID]
	if len(docs) == 0 {
		return false, nil
	}

	switch direction {
	case pagination.DirectionAfter:
		return docs[len(docs)-1].ID > id, nil
	case pagination.DirectionBefore:
		return docs[0].ID < id, nil
	default:
		return false, pagination.ErrDirectionUnset
	}
}

func cmpID(d model.Document, id string) int {
	return strings.Compare(d.ID, id)
}
