package postgres

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"docadmin/internal/adapter/out/storage"
	"docadmin/internal/model"
	"docadmin/internal/service"
	"docadmin/pkg/pagination"
	"docadmin/pkg/tableinfo"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var documentColumns = []string{
	tableinfo.DocumentIDColumn,
	tableinfo.DocumentProjectIDColumn,
	tableinfo.DocumentKeyColumn,
	tableinfo.DocumentSnapshotColumn,
	tableinfo.DocumentCreatedAtColumn,
	tableinfo.DocumentAccessedAtColumn,
	tableinfo.DocumentUpdatedAtColumn,
}

type DocumentStorage struct {
	db     trmpgx.Tr
	getter *trmpgx.CtxGetter
}

func NewDocumentStorage(db trmpgx.Tr, getter *trmpgx.CtxGetter) *DocumentStorage {
	return &DocumentStorage{
		db:     db,
		getter: getter,
	}
}

func (s *DocumentStorage) CreateDocument(ctx context.Context, in model.Document) (model.Document, error) {
	var out model.Document

	if in.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return out, fmt.Errorf("generate document id: %w", err)
		}
		in.ID = id.String()
	}
	now := time.Now().UTC()

	query, args, err := sq.
		Insert(tableinfo.DocumentsTableName).
		Columns(documentColumns...).
		Values(in.ID, in.ProjectID, in.Key, in.Snapshot, now, now, now).
		Suffix("RETURNING " + joinColumns(documentColumns)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	if err := scanDocument(tr.QueryRow(ctx, query, args...), &out); err != nil {
		if mapped := mapError(err); errors.Is(mapped, service.ErrAlreadyExists) {
			return model.Document{}, fmt.Errorf("document %q: %w", in.Key, mapped)
		}
		return model.Document{}, fmt.Errorf("exec insert document: %w", err)
	}
	return out, nil
}

func (s *DocumentStorage) GetDocumentByKey(ctx context.Context, projectID, key string) (model.Document, error) {
	var out model.Document

	query, args, err := sq.
		Select(documentColumns...).
		From(tableinfo.DocumentsTableName).
		Where(sq.Eq{
			tableinfo.DocumentProjectIDColumn: projectID,
			tableinfo.DocumentKeyColumn:       key,
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	if err := scanDocument(tr.QueryRow(ctx, query, args...), &out); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Document{}, service.ErrNotFound
		}
		return model.Document{}, fmt.Errorf("exec select document by key: %w", err)
	}
	return out, nil
}

func (s *DocumentStorage) ListDocuments(ctx context.Context, projectID string, limit int) ([]model.Document, error) {
	query, args, err := sq.
		Select(documentColumns...).
		From(tableinfo.DocumentsTableName).
		Where(sq.Eq{tableinfo.DocumentProjectIDColumn: projectID}).
		OrderBy(tableinfo.DocumentIDColumn + " ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	return s.queryDocuments(ctx, query, args, limit)
}

func (s *DocumentStorage) ListDocumentsWithCursor(ctx context.Context, params storage.ListDocumentsParams) ([]model.Document, error) {
	qb, err := listDocumentsQueryBuilder(params)
	if err != nil {
		return nil, err
	}

	query, args, err := qb.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	out, err := s.queryDocuments(ctx, query, args, params.Limit)
	if err != nil {
		return nil, err
	}
	if params.Cursor.Direction == pagination.DirectionBefore {
		slices.Reverse(out)
	}
	return out, nil
}

func (s *DocumentStorage) HasDocumentsBeyond(ctx context.Context, projectID, id string, direction pagination.Direction) (bool, error) {
	var cmp sq.Sqlizer
	switch direction {
	case pagination.DirectionAfter:
		cmp = sq.Gt{tableinfo.DocumentIDColumn: id}
	case pagination.DirectionBefore:
		cmp = sq.Lt{tableinfo.DocumentIDColumn: id}
	default:
		return false, pagination.ErrDirectionUnset
	}

	query, args, err := sq.
		Select("1").
		From(tableinfo.DocumentsTableName).
		Where(sq.Eq{tableinfo.DocumentProjectIDColumn: projectID}).
		Where(cmp).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)

	var exists bool
	if err := tr.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("exec select exists: %w", err)
	}
	return exists, nil
}

// listDocumentsQueryBuilder selects rows strictly beyond the cursor. Before
// queries come back id-descending so that LIMIT keeps the rows nearest the cursor.
func listDocumentsQueryBuilder(params storage.ListDocumentsParams) (sq.SelectBuilder, error) {
	qb := sq.
		Select(documentColumns...).
		From(tableinfo.DocumentsTableName).
		Where(sq.Eq{tableinfo.DocumentProjectIDColumn: params.ProjectID}).
		Limit(uint64(params.Limit))

	switch params.Cursor.Direction {
	case pagination.DirectionAfter:
		qb = qb.
			Where(sq.Gt{tableinfo.DocumentIDColumn: params.Cursor.PreviousID}).
			OrderBy(tableinfo.DocumentIDColumn + " ASC")
	case pagination.DirectionBefore:
		qb = qb.
			Where(sq.Lt{tableinfo.DocumentIDColumn: params.Cursor.PreviousID}).
			OrderBy(tableinfo.DocumentIDColumn + " DESC")
	default:
		return sq.SelectBuilder{}, pagination.ErrDirectionUnset
	}
	return qb, nil
}

func (s *DocumentStorage) queryDocuments(ctx context.Context, query string, args []any, limit int) ([]model.Document, error) {
	tr := s.getter.DefaultTrOrDB(ctx, s.db)

	rows, err := tr.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("exec select documents: %w", err)
	}
	defer rows.Close()

	out := make([]model.Document, 0, limit)
	for rows.Next() {
		var d model.Document
		if err := scanDocument(rows, &d); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

func scanDocument(row pgx.Row, d *model.Document) error {
	return row.Scan(
		&d.ID,
		&d.ProjectID,
		&d.Key,
		&d.Snapshot,
		&d.CreatedAt,
		&d.AccessedAt,
		&d.UpdatedAt,
	)
}
