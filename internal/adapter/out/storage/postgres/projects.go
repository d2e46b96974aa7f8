package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"docadmin/internal/model"
	"docadmin/internal/service"
	"docadmin/pkg/tableinfo"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var projectColumns = []string{
	tableinfo.ProjectIDColumn,
	tableinfo.ProjectNameColumn,
	tableinfo.ProjectAuthWebhookURLColumn,
	tableinfo.ProjectAuthWebhookMethodsColumn,
	tableinfo.ProjectPublicKeyColumn,
	tableinfo.ProjectSecretKeyColumn,
	tableinfo.ProjectCreatedAtColumn,
}

type ProjectStorage struct {
	db     trmpgx.Tr
	getter *trmpgx.CtxGetter
}

func NewProjectStorage(db trmpgx.Tr, getter *trmpgx.CtxGetter) *ProjectStorage {
	return &ProjectStorage{
		db:     db,
		getter: getter,
	}
}

func (s *ProjectStorage) CreateProject(ctx context.Context, in model.Project) (model.Project, error) {
	var out model.Project

	if in.ID == "" {
		in.ID = uuid.NewString()
	}
	if in.AuthWebhookMethods == nil {
		in.AuthWebhookMethods = []string{}
	}

	query, args, err := sq.
		Insert(tableinfo.ProjectsTableName).
		Columns(projectColumns[:len(projectColumns)-1]...).
		Values(in.ID, in.Name, in.AuthWebhookURL, in.AuthWebhookMethods, in.PublicKey, in.SecretKey).
		Suffix("RETURNING " + joinColumns(projectColumns)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	if err := scanProject(tr.QueryRow(ctx, query, args...), &out); err != nil {
		if mapped := mapError(err); errors.Is(mapped, service.ErrAlreadyExists) {
			return model.Project{}, fmt.Errorf("project %q: %w", in.Name, mapped)
		}
		return model.Project{}, fmt.Errorf("exec insert project: %w", err)
	}
	return out, nil
}

func (s *ProjectStorage) GetProjectByName(ctx context.Context, name string) (model.Project, error) {
	var out model.Project

	query, args, err := sq.
		Select(projectColumns...).
		From(tableinfo.ProjectsTableName).
		Where(sq.Eq{tableinfo.ProjectNameColumn: name}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	if err := scanProject(tr.QueryRow(ctx, query, args...), &out); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Project{}, service.ErrNotFound
		}
		return model.Project{}, fmt.Errorf("exec select project by name: %w", err)
	}
	return out, nil
}

func (s *ProjectStorage) ListProjects(ctx context.Context) ([]model.Project, error) {
	query, args, err := sq.
		Select(projectColumns...).
		From(tableinfo.ProjectsTableName).
		OrderBy(tableinfo.ProjectCreatedAtColumn+" ASC", tableinfo.ProjectIDColumn+" ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	rows, err := tr.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("exec select projects: %w", err)
	}
	defer rows.Close()

	var out []model.Project
	for rows.Next() {
		var p model.Project
		if err := scanProject(rows, &p); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

func (s *ProjectStorage) UpdateProject(ctx context.Context, projectID string, fields model.UpdatableProjectFields) (model.Project, error) {
	var out model.Project

	qb := sq.Update(tableinfo.ProjectsTableName)
	if fields.Name != nil {
		qb = qb.Set(tableinfo.ProjectNameColumn, *fields.Name)
	}
	if fields.AuthWebhookURL != nil {
		qb = qb.Set(tableinfo.ProjectAuthWebhookURLColumn, *fields.AuthWebhookURL)
	}
	if fields.AuthWebhookMethods != nil {
		qb = qb.Set(tableinfo.ProjectAuthWebhookMethodsColumn, *fields.AuthWebhookMethods)
	}

	query, args, err := qb.
		Where(sq.Eq{tableinfo.ProjectIDColumn: projectID}).
		Suffix("RETURNING " + joinColumns(projectColumns)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	if err := scanProject(tr.QueryRow(ctx, query, args...), &out); err != nil {
		switch mapped := mapError(err); {
		case errors.Is(mapped, service.ErrNotFound), errors.Is(mapped, service.ErrAlreadyExists):
			return model.Project{}, mapped
		default:
			return model.Project{}, fmt.Errorf("exec update project: %w", err)
		}
	}
	return out, nil
}

func scanProject(row pgx.Row, p *model.Project) error {
	return row.Scan(
		&p.ID,
		&p.Name,
		&p.AuthWebhookURL,
		&p.AuthWebhookMethods,
		&p.PublicKey,
		&p.SecretKey,
		&p.CreatedAt,
	)
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
