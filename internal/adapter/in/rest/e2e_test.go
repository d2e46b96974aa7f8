package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"docadmin/internal/adapter/out/adminapi"
	"docadmin/internal/console"
	"docadmin/pkg/pagination"

	"github.com/stretchr/testify/require"
)

// Drives the console list through the HTTP client against the real router.
func TestConsoleAgainstServer(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.seed(t, "demo", "1", "2", "3", "4", "5")
	f.seed(t, "other", "9")

	srv := httptest.NewServer(f.router)
	defer srv.Close()

	client, err := adminapi.New(adminapi.Config{BaseURL: srv.URL, PageSize: 2})
	require.NoError(t, err)

	ctx := context.Background()
	list := console.NewDocumentList(client, "demo")

	ids := func() []string {
		v := list.View()
		out := make([]string, 0, len(v.Documents))
		for _, d := range v.Documents {
			out = append(out, d.ID)
		}
		return out
	}

	require.NoError(t, list.Load(ctx))
	require.Equal(t, []string{"1", "2"}, ids())
	require.False(t, list.View().HasPrevious)
	require.True(t, list.View().HasNext)

	require.NoError(t, list.RequestNext(ctx))
	require.Equal(t, []string{"3", "4"}, ids())
	require.True(t, list.View().HasPrevious)
	require.True(t, list.View().HasNext)

	require.NoError(t, list.RequestNext(ctx))
	require.Equal(t, []string{"5"}, ids())
	require.ErrorIs(t, list.RequestNext(ctx), console.ErrNoNextPage)

	require.NoError(t, list.RequestPrevious(ctx))
	require.Equal(t, []string{"3", "4"}, ids())

	require.NoError(t, list.RequestPrevious(ctx))
	require.Equal(t, []string{"1", "2"}, ids())
	require.ErrorIs(t, list.RequestPrevious(ctx), console.ErrNoPreviousPage)

	require.NoError(t, list.SwitchProject(ctx, "other"))
	require.Equal(t, []string{"9"}, ids())

	err = list.SwitchProject(ctx, "missing")
	require.ErrorIs(t, err, adminapi.ErrNotFound)
	require.Empty(t, ids())

	// identical fetches return identical pages
	a, err := client.FetchPage(ctx, "demo", pagination.After("1"))
	require.NoError(t, err)
	b, err := client.FetchPage(ctx, "demo", pagination.After("1"))
	require.NoError(t, err)
	require.Equal(t, a, b)
}

// Keys created through the client can always be opened again by key.
func TestDocumentKeysRoundTrip(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.seed(t, "demo")

	srv := httptest.NewServer(f.router)
	defer srv.Close()

	client, err := adminapi.New(adminapi.Config{BaseURL: srv.URL})
	require.NoError(t, err)
	ctx := context.Background()

	for _, key := range []string{"a%b", "a b", "résumé"} {
		created, err := client.CreateDocument(ctx, "demo", key, "")
		require.NoError(t, err, key)

		got, err := client.GetDocument(ctx, "demo", key)
		require.NoError(t, err, key)
		require.Equal(t, created, got)
	}

	_, err = client.CreateDocument(ctx, "demo", "a/b", "")
	require.True(t, adminapi.IsStatus(err, http.StatusBadRequest), "got %v", err)
}
