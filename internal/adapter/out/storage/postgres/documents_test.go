package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"docadmin/internal/adapter/out/storage"
	"docadmin/internal/model"
	"docadmin/internal/service"
	"docadmin/pkg/pagination"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

func documentRows(now time.Time, ids ...string) *pgxmock.Rows {
	rows := pgxmock.NewRows(documentColumns)
	for _, id := range ids {
		rows.AddRow(id, "p1", "doc-"+id, "{}", now, now, now)
	}
	return rows
}

func Test_listDocumentsQueryBuilder(t *testing.T) {
	tests := []struct {
		name     string
		params   storage.ListDocumentsParams
		wantSQL  string
		wantArgs []any
		wantErr  error
	}{
		{
			name: "after cursor",
			params: storage.ListDocumentsParams{
				ProjectID: "p1",
				Cursor:    *pagination.After("2"),
				Limit:     3,
			},
			wantSQL:  "SELECT id, project_id, key, snapshot, created_at, accessed_at, updated_at FROM documents WHERE project_id = $1 AND id > $2 ORDER BY id ASC LIMIT 3",
			wantArgs: []any{"p1", "2"},
		},
		{
			name: "before cursor",
			params: storage.ListDocumentsParams{
				ProjectID: "p1",
				Cursor:    *pagination.Before("5"),
				Limit:     3,
			},
			wantSQL:  "SELECT id, project_id, key, snapshot, created_at, accessed_at, updated_at FROM documents WHERE project_id = $1 AND id < $2 ORDER BY id DESC LIMIT 3",
			wantArgs: []any{"p1", "5"},
		},
		{
			name: "invalid direction",
			params: storage.ListDocumentsParams{
				ProjectID: "p1",
				Cursor:    pagination.Cursor{PreviousID: "1"},
				Limit:     3,
			},
			wantErr: pagination.ErrDirectionUnset,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qb, err := listDocumentsQueryBuilder(tt.params)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			sql, args, err := qb.PlaceholderFormat(sq.Dollar).ToSql()
			require.NoError(t, err)
			require.Equal(t, tt.wantSQL, sql)
			require.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestDocumentStorage_CreateDocument(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	now := time.Now().UTC()
	pool.ExpectQuery(regexp.QuoteMeta("INSERT INTO documents (id,project_id,key,snapshot,created_at,accessed_at,updated_at)")).
		WithArgs(pgxmock.AnyArg(), "p1", "k", "{}", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(documentColumns).AddRow("0190", "p1", "k", "{}", now, now, now))

	st := NewDocumentStorage(pool, trmpgx.DefaultCtxGetter)
	out, err := st.CreateDocument(context.Background(), model.Document{ProjectID: "p1", Key: "k", Snapshot: "{}"})
	require.NoError(t, err)
	require.Equal(t, "0190", out.ID)
	require.Equal(t, now, out.CreatedAt)
	require.NoError(t, pool.ExpectationsWereMet())
}

func TestDocumentStorage_CreateDocument_Duplicate(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	pool.ExpectQuery("INSERT INTO documents").
		WithArgs("1", "p1", "k", "", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})

	st := NewDocumentStorage(pool, trmpgx.DefaultCtxGetter)
	_, err = st.CreateDocument(context.Background(), model.Document{ID: "1", ProjectID: "p1", Key: "k"})
	require.ErrorIs(t, err, service.ErrAlreadyExists)
	require.NoError(t, pool.ExpectationsWereMet())
}

func TestDocumentStorage_GetDocumentByKey(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		setup func(m pgxmock.PgxPoolIface)
		check func(t *testing.T, got model.Document, err error)
	}{
		{
			name: "success",
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery(regexp.QuoteMeta("FROM documents WHERE key = $1 AND project_id = $2")).
					WithArgs("doc-1", "p1").
					WillReturnRows(documentRows(now, "1"))
			},
			check: func(t *testing.T, got model.Document, err error) {
				require.NoError(t, err)
				require.Equal(t, "1", got.ID)
				require.Equal(t, "doc-1", got.Key)
			},
		},
		{
			name: "not found",
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery("FROM documents").WithArgs("doc-1", "p1").WillReturnError(pgx.ErrNoRows)
			},
			check: func(t *testing.T, _ model.Document, err error) {
				require.ErrorIs(t, err, service.ErrNotFound)
			},
		},
		{
			name: "db error",
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery("FROM documents").WithArgs("doc-1", "p1").WillReturnError(errors.New("boom"))
			},
			check: func(t *testing.T, _ model.Document, err error) {
				require.Error(t, err)
				require.Contains(t, err.Error(), "exec select document by key")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer pool.Close()
			tt.setup(pool)

			st := NewDocumentStorage(pool, trmpgx.DefaultCtxGetter)
			got, err := st.GetDocumentByKey(context.Background(), "p1", "doc-1")
			tt.check(t, got, err)
			require.NoError(t, pool.ExpectationsWereMet())
		})
	}
}

func TestDocumentStorage_ListDocuments(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	pool.ExpectQuery(regexp.QuoteMeta("WHERE project_id = $1 ORDER BY id ASC LIMIT 3")).
		WithArgs("p1").
		WillReturnRows(documentRows(time.Now(), "1", "2", "3"))

	st := NewDocumentStorage(pool, trmpgx.DefaultCtxGetter)
	got, err := st.ListDocuments(context.Background(), "p1", 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "1", got[0].ID)
	require.NoError(t, pool.ExpectationsWereMet())
}

func TestDocumentStorage_ListDocumentsWithCursor(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		params  storage.ListDocumentsParams
		setup   func(m pgxmock.PgxPoolIface)
		wantIDs []string
		wantErr string
	}{
		{
			name:   "after keeps ascending order",
			params: storage.ListDocumentsParams{ProjectID: "p1", Cursor: *pagination.After("2"), Limit: 3},
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery(regexp.QuoteMeta("id > $2 ORDER BY id ASC")).
					WithArgs("p1", "2").
					WillReturnRows(documentRows(now, "3", "4", "5"))
			},
			wantIDs: []string{"3", "4", "5"},
		},
		{
			name:   "before is reversed to ascending",
			params: storage.ListDocumentsParams{ProjectID: "p1", Cursor: *pagination.Before("4"), Limit: 3},
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery(regexp.QuoteMeta("id < $2 ORDER BY id DESC")).
					WithArgs("p1", "4").
					WillReturnRows(documentRows(now, "3", "2", "1"))
			},
			wantIDs: []string{"1", "2", "3"},
		},
		{
			name:   "query error",
			params: storage.ListDocumentsParams{ProjectID: "p1", Cursor: *pagination.After("2"), Limit: 3},
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery("FROM documents").WithArgs("p1", "2").WillReturnError(errors.New("boom"))
			},
			wantErr: "exec select documents",
		},
		{
			name:   "scan error",
			params: storage.ListDocumentsParams{ProjectID: "p1", Cursor: *pagination.After("2"), Limit: 3},
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery("FROM documents").
					WithArgs("p1", "2").
					WillReturnRows(pgxmock.NewRows(documentColumns).AddRow("3", "p1", "k", "{}", "oops", now, now))
			},
			wantErr: "scan document",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer pool.Close()
			tt.setup(pool)

			st := NewDocumentStorage(pool, trmpgx.DefaultCtxGetter)
			got, err := st.ListDocumentsWithCursor(context.Background(), tt.params)
			if tt.wantErr != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.wantErr)
				require.NoError(t, pool.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)

			ids := make([]string, 0, len(got))
			for _, d := range got {
				ids = append(ids, d.ID)
			}
			require.Equal(t, tt.wantIDs, ids)
			require.NoError(t, pool.ExpectationsWereMet())
		})
	}
}

func TestDocumentStorage_HasDocumentsBeyond(t *testing.T) {
	tests := []struct {
		name      string
		direction pagination.Direction
		wantSQL   string
		exists    bool
	}{
		{
			name:      "after",
			direction: pagination.DirectionAfter,
			wantSQL:   "SELECT EXISTS ( SELECT 1 FROM documents WHERE project_id = $1 AND id > $2 )",
			exists:    true,
		},
		{
			name:      "before",
			direction: pagination.DirectionBefore,
			wantSQL:   "SELECT EXISTS ( SELECT 1 FROM documents WHERE project_id = $1 AND id < $2 )",
			exists:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer pool.Close()

			pool.ExpectQuery(regexp.QuoteMeta(tt.wantSQL)).
				WithArgs("p1", "3").
				WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(tt.exists))

			st := NewDocumentStorage(pool, trmpgx.DefaultCtxGetter)
			got, err := st.HasDocumentsBeyond(context.Background(), "p1", "3", tt.direction)
			require.NoError(t, err)
			require.Equal(t, tt.exists, got)
			require.NoError(t, pool.ExpectationsWereMet())
		})
	}

	st := NewDocumentStorage(nil, trmpgx.DefaultCtxGetter)
	_, err := st.HasDocumentsBeyond(context.Background(), "p1", "3", pagination.DirectionUnspecified)
	require.ErrorIs(t, err, pagination.ErrDirectionUnset)
}
