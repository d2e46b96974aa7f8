package inmemory

import (
	"context"
	"slices"
	"sync"
	"time"

	"docadmin/internal/model"
	"docadmin/internal/service"

	"github.com/google/uuid"
)

type ProjectStorage struct {
	mu       sync.RWMutex
	projects []model.Project
}

func NewProjectStorage() *ProjectStorage {
	return &ProjectStorage{}
}

func (s *ProjectStorage) CreateProject(_ context.Context, in model.Project) (model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexByName(in.Name) >= 0 {
		return model.Project{}, service.ErrAlreadyExists
	}
	if in.ID == "" {
		in.ID = uuid.NewString()
	}
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now().UTC()
	}
	if in.AuthWebhookMethods == nil {
		in.AuthWebhookMethods = []string{}
	}
	s.projects = append(s.projects, clone(in))
	return in, nil
}

func (s *ProjectStorage) GetProjectByName(_ context.Context, name string) (model.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexByName(name)
	if i < 0 {
		return model.Project{}, service.ErrNotFound
	}
	return clone(s.projects[i]), nil
}

func (s *ProjectStorage) ListProjects(_ context.Context) ([]model.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, clone(p))
	}
	return out, nil
}

func (s *ProjectStorage) UpdateProject(_ context.Context, projectID string, fields model.UpdatableProjectFields) (model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.projects, func(p model.Project) bool { return p.ID == projectID })
	if i < 0 {
		return model.Project{}, service.ErrNotFound
	}
	if fields.Name != nil {
		if j := s.indexByName(*fields.Name); j >= 0 && j != i {
			return model.Project{}, service.ErrAlreadyExists
		}
	}

	s.projects[i] = fields.Apply(s.projects[i])
	return clone(s.projects[i]), nil
}

func (s *ProjectStorage) indexByName(name string) int {
	return slices.IndexFunc(s.projects, func(p model.Project) bool { return p.Name == name })
}

func clone(p model.Project) model.Project {
	p.AuthWebhookMethods = slices.Clone(p.AuthWebhookMethods)
	return p
}
