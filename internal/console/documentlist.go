// Package console holds the client-side state of the admin console.
package console

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"docadmin/internal/model"
	"docadmin/pkg/logger"
	"docadmin/pkg/pagination"
)

const DefaultFetchTimeout = 10 * time.Second

var (
	ErrNoPreviousPage = errors.New("no previous page")
	ErrNoNextPage     = errors.New("no next page")
	// ErrSuperseded is returned by a fetch whose result was dropped because a newer one started.
	ErrSuperseded = errors.New("fetch superseded")
	ErrTimeout    = errors.New("fetch timed out")
)

// PageFetcher loads one page of a project's documents.
type PageFetcher interface {
	FetchPage(ctx context.Context, projectName string, cursor *pagination.Cursor) (pagination.Page[model.DocumentSummary], error)
}

type Option func(*DocumentList)

func WithTimeout(d time.Duration) Option {
	return func(l *DocumentList) {
		if d > 0 {
			l.timeout = d
		}
	}
}

// WithSubscriberBuffer sets how many views a slow subscriber may lag behind.
func WithSubscriberBuffer(n int) Option {
	return func(l *DocumentList) {
		l.bus = newViewBus(n)
	}
}

// DocumentList owns the page of documents shown for one project.
// Only the most recent fetch may change it. Safe for concurrent use.
type DocumentList struct {
	fetcher PageFetcher
	timeout time.Duration
	bus     *viewBus

	mu         sync.Mutex
	project    string
	page       pagination.Page[model.DocumentSummary]
	status     Status
	lastCursor *pagination.Cursor
	seq        uint64
	cancel     context.CancelFunc
}

func NewDocumentList(fetcher PageFetcher, project string, opts ...Option) *DocumentList {
	l := &DocumentList{
		fetcher: fetcher,
		timeout: DefaultFetchTimeout,
		bus:     newViewBus(defaultViewBuffer),
		project: project,
		status:  Idle{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load fetches the first page of the current project.
func (l *DocumentList) Load(ctx context.Context) error {
	l.mu.Lock()
	return l.fetch(ctx, nil)
}

// RequestPrevious fetches the page before the first displayed document.
func (l *DocumentList) RequestPrevious(ctx context.Context) error {
	l.mu.Lock()
	if !l.viewLocked().CanPrevious() {
		l.mu.Unlock()
		return ErrNoPreviousPage
	}
	return l.fetch(ctx, pagination.Before(l.page.Items[0].ID))
}

// RequestNext fetches the page after the last displayed document.
func (l *DocumentList) RequestNext(ctx context.Context) error {
	l.mu.Lock()
	if !l.viewLocked().CanNext() {
		l.mu.Unlock()
		return ErrNoNextPage
	}
	return l.fetch(ctx, pagination.After(l.page.Items[len(l.page.Items)-1].ID))
}

// Retry repeats the most recent request.
func (l *DocumentList) Retry(ctx context.Context) error {
	l.mu.Lock()
	return l.fetch(ctx, l.lastCursor)
}

// SwitchProject drops the displayed page and loads the first page of project.
func (l *DocumentList) SwitchProject(ctx context.Context, project string) error {
	l.mu.Lock()
	l.project = project
	l.page = pagination.Page[model.DocumentSummary]{}
	return l.fetch(ctx, nil)
}

func (l *DocumentList) View() View {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.viewLocked()
}

// Subscribe streams every view change until ctx is done.
func (l *DocumentList) Subscribe(ctx context.Context) <-chan View {
	return l.bus.subscribe(ctx)
}

// fetch must be called with l.mu held; it releases it while the request runs.
func (l *DocumentList) fetch(ctx context.Context, cursor *pagination.Cursor) error {
	if l.cancel != nil {
		l.cancel()
	}
	l.seq++
	seq := l.seq
	project := l.project

	fctx, cancel := context.WithTimeout(ctx, l.timeout)
	l.cancel = cancel
	l.lastCursor = cursor
	l.status = Loading{Cursor: cursor}
	l.publishLocked()
	l.mu.Unlock()
	defer cancel()

	log := logger.FromContext(ctx).With("project", project, "cursor", cursor.String())
	log.Debug("fetching documents page")

	page, err := l.fetcher.FetchPage(fctx, project, cursor)

	l.mu.Lock()
	defer l.mu.Unlock()

	if seq != l.seq {
		log.Debug("dropping superseded page")
		return ErrSuperseded
	}
	l.cancel = nil

	if err != nil {
		if errors.Is(fctx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("%w after %s: %w", ErrTimeout, l.timeout, err)
		}
		log.Warn("fetch documents page failed", "error", err)
		l.status = Failed{Err: err}
		l.publishLocked()
		return err
	}

	l.page = page
	l.status = Idle{}
	l.publishLocked()
	return nil
}

func (l *DocumentList) viewLocked() View {
	return View{
		Project:     l.project,
		Documents:   slices.Clone(l.page.Items),
		HasPrevious: l.page.HasPrevious,
		HasNext:     l.page.HasNext,
		Status:      l.status,
	}
}

func (l *DocumentList) publishLocked() {
	l.bus.publish(l.viewLocked())
}
