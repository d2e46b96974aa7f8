package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"docadmin/internal/model"

	"github.com/google/uuid"
)

//go:generate mockgen -source=projects.go -destination=./project_storage_mock.go -package=service
type ProjectStorage interface {
	CreateProject(ctx context.Context, project model.Project) (model.Project, error)
	GetProjectByName(ctx context.Context, name string) (model.Project, error)
	ListProjects(ctx context.Context) ([]model.Project, error)
	UpdateProject(ctx context.Context, projectID string, fields model.UpdatableProjectFields) (model.Project, error)
}

// TxManager runs fn inside a transaction carried by the context.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type ProjectService struct {
	projectStorage ProjectStorage
	trManager      TxManager
}

func NewProjectService(projectStorage ProjectStorage, trManager TxManager) *ProjectService {
	return &ProjectService{
		projectStorage: projectStorage,
		trManager:      trManager,
	}
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]model.Project, error) {
	return s.projectStorage.ListProjects(ctx)
}

func (s *ProjectService) GetProject(ctx context.Context, name string) (model.Project, error) {
	if name == "" {
		return model.Project{}, fmt.Errorf("project name is required: %w", ErrInvalidRequest)
	}
	return s.projectStorage.GetProjectByName(ctx, name)
}

func (s *ProjectService) CreateProject(ctx context.Context, req CreateProjectRequest) (model.Project, error) {
	if err := validate.Struct(req); err != nil {
		return model.Project{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	var out model.Project
	err := s.trManager.Do(ctx, func(ctx context.Context) error {
		if err := s.ensureNameFree(ctx, req.Name); err != nil {
			return err
		}

		p, err := s.projectStorage.CreateProject(ctx, model.Project{
			Name:               req.Name,
			AuthWebhookMethods: []string{},
			PublicKey:          newKey(),
			SecretKey:          newKey(),
		})
		if err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return model.Project{}, err
	}
	return out, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, name string, fields model.UpdatableProjectFields) (model.Project, error) {
	if name == "" {
		return model.Project{}, fmt.Errorf("project name is required: %w", ErrInvalidRequest)
	}
	if fields.IsEmpty() {
		return model.Project{}, fmt.Errorf("no fields to update: %w", ErrInvalidRequest)
	}
	if err := validate.Struct(fields); err != nil {
		return model.Project{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	var out model.Project
	err := s.trManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.projectStorage.GetProjectByName(ctx, name)
		if err != nil {
			return err
		}

		if fields.Name != nil && *fields.Name != current.Name {
			if err := s.ensureNameFree(ctx, *fields.Name); err != nil {
				return err
			}
		}

		p, err := s.projectStorage.UpdateProject(ctx, current.ID, fields)
		if err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return model.Project{}, err
	}
	return out, nil
}

func (s *ProjectService) ensureNameFree(ctx context.Context, name string) error {
	_, err := s.projectStorage.GetProjectByName(ctx, name)
	switch {
	case err == nil:
		return fmt.Errorf("project %q: %w", name, ErrAlreadyExists)
	case errors.Is(err, ErrNotFound):
		return nil
	default:
		return err
	}
}

func newKey() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
