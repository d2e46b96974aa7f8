package storage

import (
	"docadmin/pkg/pagination"
)

type ListDocumentsParams struct {
	ProjectID string
	Cursor    pagination.Cursor
	Limit     int
}
