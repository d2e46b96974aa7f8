package model

import "time"

type Document struct {
	ID         string
	ProjectID  string
	Key        string
	Snapshot   string
	CreatedAt  time.Time
	AccessedAt time.Time
	UpdatedAt  time.Time
}

// DocumentSummary is the read-only projection shown in document lists.
type DocumentSummary struct {
	ID         string
	Key        string
	Snapshot   string
	CreatedAt  time.Time
	AccessedAt time.Time
	UpdatedAt  time.Time
}

func (d Document) Summary() DocumentSummary {
	return DocumentSummary{
		ID:         d.ID,
		Key:        d.Key,
		Snapshot:   d.Snapshot,
		CreatedAt:  d.CreatedAt,
		AccessedAt: d.AccessedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}
