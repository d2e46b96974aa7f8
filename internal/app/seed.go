package app

import (
	"context"
	"errors"
	"fmt"

	"docadmin/internal/service"
)

const DemoProject = "demo"

// DemoDocuments is how many documents SeedDemo creates.
const DemoDocuments = 25

// SeedDemo creates the demo project with n documents unless it already exists.
func SeedDemo(ctx context.Context, projects *service.ProjectService, documents *service.DocumentService, n int) error {
	_, err := projects.CreateProject(ctx, service.CreateProjectRequest{Name: DemoProject})
	switch {
	case errors.Is(err, service.ErrAlreadyExists):
		return nil
	case err != nil:
		return err
	}

	for i := 1; i <= n; i++ {
		_, err := documents.CreateDocument(ctx, service.CreateDocumentRequest{
			ProjectName: DemoProject,
			Key:         fmt.Sprintf("document-%03d", i),
			Snapshot:    fmt.Sprintf(`{"n":%d}`, i),
		})
		if err != nil {
			return err
		}
	}
	return nil
}
