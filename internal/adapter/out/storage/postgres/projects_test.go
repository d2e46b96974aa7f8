package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"docadmin/internal/model"
	"docadmin/internal/service"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

func projectRow(now time.Time, name string, methods []string) *pgxmock.Rows {
	return pgxmock.NewRows(projectColumns).
		AddRow("p1", name, "https://auth.example.com", methods, "pk", "sk", now)
}

func TestProjectStorage_CreateProject(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	now := time.Now()
	pool.ExpectQuery(regexp.QuoteMeta("INSERT INTO projects (id,name,auth_webhook_url,auth_webhook_methods,public_key,secret_key)")).
		WithArgs(pgxmock.AnyArg(), "demo", "", []string{}, "pk", "sk").
		WillReturnRows(projectRow(now, "demo", []string{}))

	st := NewProjectStorage(pool, trmpgx.DefaultCtxGetter)
	out, err := st.CreateProject(context.Background(), model.Project{Name: "demo", PublicKey: "pk", SecretKey: "sk"})
	require.NoError(t, err)
	require.Equal(t, "p1", out.ID)
	require.Equal(t, "demo", out.Name)
	require.NoError(t, pool.ExpectationsWereMet())
}

func TestProjectStorage_CreateProject_Duplicate(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	pool.ExpectQuery("INSERT INTO projects").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})

	st := NewProjectStorage(pool, trmpgx.DefaultCtxGetter)
	_, err = st.CreateProject(context.Background(), model.Project{Name: "demo"})
	require.ErrorIs(t, err, service.ErrAlreadyExists)
	require.NoError(t, pool.ExpectationsWereMet())
}

func TestProjectStorage_GetProjectByName(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		setup   func(m pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "success",
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery(regexp.QuoteMeta("FROM projects WHERE name = $1")).
					WithArgs("demo").
					WillReturnRows(projectRow(now, "demo", []string{"PushPull"}))
			},
		},
		{
			name: "not found",
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery("FROM projects").WithArgs("demo").WillReturnError(pgx.ErrNoRows)
			},
			wantErr: service.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer pool.Close()
			tt.setup(pool)

			st := NewProjectStorage(pool, trmpgx.DefaultCtxGetter)
			got, err := st.GetProjectByName(context.Background(), "demo")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, []string{"PushPull"}, got.AuthWebhookMethods)
			require.NoError(t, pool.ExpectationsWereMet())
		})
	}
}

func TestProjectStorage_ListProjects(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	now := time.Now()
	rows := pgxmock.NewRows(projectColumns).
		AddRow("p1", "demo", "", []string{}, "pk1", "sk1", now).
		AddRow("p2", "other", "", []string{}, "pk2", "sk2", now)
	pool.ExpectQuery(regexp.QuoteMeta("FROM projects ORDER BY created_at ASC, id ASC")).WillReturnRows(rows)

	st := NewProjectStorage(pool, trmpgx.DefaultCtxGetter)
	got, err := st.ListProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "other", got[1].Name)
	require.NoError(t, pool.ExpectationsWereMet())
}

func TestProjectStorage_UpdateProject(t *testing.T) {
	now := time.Now()
	name := "renamed"
	url := "https://auth.example.com"
	methods := []string{"PushPull"}

	tests := []struct {
		name    string
		fields  model.UpdatableProjectFields
		setup   func(m pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name:   "only set fields are written",
			fields: model.UpdatableProjectFields{Name: &name, AuthWebhookMethods: &methods},
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery(regexp.QuoteMeta("UPDATE projects SET name = $1, auth_webhook_methods = $2 WHERE id = $3 RETURNING")).
					WithArgs("renamed", methods, "p1").
					WillReturnRows(projectRow(now, "renamed", methods))
			},
		},
		{
			name:   "webhook url",
			fields: model.UpdatableProjectFields{AuthWebhookURL: &url},
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery(regexp.QuoteMeta("UPDATE projects SET auth_webhook_url = $1 WHERE id = $2")).
					WithArgs(url, "p1").
					WillReturnRows(projectRow(now, "renamed", methods))
			},
		},
		{
			name:   "missing project",
			fields: model.UpdatableProjectFields{Name: &name},
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery("UPDATE projects").WithArgs("renamed", "p1").WillReturnError(pgx.ErrNoRows)
			},
			wantErr: service.ErrNotFound,
		},
		{
			name:   "name collision",
			fields: model.UpdatableProjectFields{Name: &name},
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery("UPDATE projects").WithArgs("renamed", "p1").WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})
			},
			wantErr: service.ErrAlreadyExists,
		},
		{
			name:   "db error",
			fields: model.UpdatableProjectFields{Name: &name},
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery("UPDATE projects").WithArgs("renamed", "p1").WillReturnError(errors.New("boom"))
			},
			wantErr: errors.New("boom"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer pool.Close()
			tt.setup(pool)

			st := NewProjectStorage(pool, trmpgx.DefaultCtxGetter)
			got, err := st.UpdateProject(context.Background(), "p1", tt.fields)
			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, service.ErrNotFound) || errors.Is(tt.wantErr, service.ErrAlreadyExists) {
					require.ErrorIs(t, err, tt.wantErr)
				}
				require.NoError(t, pool.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.Equal(t, "p1", got.ID)
			require.NoError(t, pool.ExpectationsWereMet())
		})
	}
}

func TestMigrate(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	pool.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS projects")).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	require.NoError(t, Migrate(context.Background(), pool))

	pool.ExpectExec("CREATE TABLE").WillReturnError(errors.New("denied"))
	require.ErrorContains(t, Migrate(context.Background(), pool), "apply schema")
}
