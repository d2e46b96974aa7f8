package rest

import (
	"context"
	"net/http"
	"strconv"

	"docadmin/internal/model"
	"docadmin/internal/service"
	"docadmin/pkg/pagination"

	"github.com/labstack/echo/v4"
)

type DocumentService interface {
	ListDocuments(ctx context.Context, in service.ListDocumentsRequest) (pagination.Page[model.DocumentSummary], error)
	GetDocument(ctx context.Context, projectName, key string) (model.DocumentSummary, error)
	CreateDocument(ctx context.Context, req service.CreateDocumentRequest) (model.DocumentSummary, error)
}

type ProjectService interface {
	ListProjects(ctx context.Context) ([]model.Project, error)
	GetProject(ctx context.Context, name string) (model.Project, error)
	CreateProject(ctx context.Context, req service.CreateProjectRequest) (model.Project, error)
	UpdateProject(ctx context.Context, name string, fields model.UpdatableProjectFields) (model.Project, error)
}

type Handler struct {
	documents DocumentService
	projects  ProjectService
}

func NewHandler(documents DocumentService, projects ProjectService) *Handler {
	return &Handler{
		documents: documents,
		projects:  projects,
	}
}

func (h *Handler) ListProjects(c echo.Context) error {
	projects, err := h.projects.ListProjects(c.Request().Context())
	if err != nil {
		return err
	}

	out := projectListJSON{Projects: make([]projectJSON, 0, len(projects))}
	for _, p := range projects {
		out.Projects = append(out.Projects, toProjectJSON(p))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) GetProject(c echo.Context) error {
	p, err := h.projects.GetProject(c.Request().Context(), c.Param("projectName"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProjectJSON(p))
}

func (h *Handler) CreateProject(c echo.Context) error {
	var body createProjectJSON
	if err := c.Bind(&body); err != nil {
		return err
	}

	p, err := h.projects.CreateProject(c.Request().Context(), service.CreateProjectRequest{Name: body.Name})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toProjectJSON(p))
}

func (h *Handler) UpdateProject(c echo.Context) error {
	var body updateProjectJSON
	if err := c.Bind(&body); err != nil {
		return err
	}

	p, err := h.projects.UpdateProject(c.Request().Context(), c.Param("projectName"), body.toModel())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProjectJSON(p))
}

func (h *Handler) ListDocuments(c echo.Context) error {
	q := c.QueryParams()

	cursor, err := pagination.Decode(q)
	if err != nil {
		return err
	}

	var pageSize int
	if raw := q.Get(pagination.PageSizeParam); raw != "" {
		pageSize, err = strconv.Atoi(raw)
		if err != nil || pageSize <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "pageSize must be a positive integer")
		}
	}

	page, err := h.documents.ListDocuments(c.Request().Context(), service.ListDocumentsRequest{
		ProjectName: c.Param("projectName"),
		Cursor:      cursor,
		PageSize:    pageSize,
	})
	if err != nil {
		return err
	}

	observePage(cursor, page.Len())
	return c.JSON(http.StatusOK, toDocumentPageJSON(page))
}

func (h *Handler) GetDocument(c echo.Context) error {
	doc, err := h.documents.GetDocument(c.Request().Context(), c.Param("projectName"), c.Param("documentKey"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDocumentJSON(doc))
}

func (h *Handler) CreateDocument(c echo.Context) error {
	var body createDocumentJSON
	if err := c.Bind(&body); err != nil {
		return err
	}

	doc, err := h.documents.CreateDocument(c.Request().Context(), service.CreateDocumentRequest{
		ProjectName: c.Param("projectName"),
		Key:         body.Key,
		Snapshot:    body.Snapshot,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toDocumentJSON(doc))
}

func Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
