package console

import (
	"docadmin/internal/model"
	"docadmin/pkg/pagination"
)

// Status is the fetch state of a DocumentList: Idle, Loading or Failed.
type Status interface {
	isStatus()
	String() string
}

type Idle struct{}

// Loading carries the cursor of the in-flight request; nil means the first page.
type Loading struct {
	Cursor *pagination.Cursor
}

// Failed carries the error of the last request. The displayed page is the one
// shown before that request.
type Failed struct {
	Err error
}

func (Idle) isStatus()    {}
func (Loading) isStatus() {}
func (Failed) isStatus()  {}

func (Idle) String() string      { return "idle" }
func (s Loading) String() string { return "loading " + s.Cursor.String() }
func (s Failed) String() string  { return "failed: " + s.Err.Error() }

// View is an immutable snapshot of a DocumentList.
type View struct {
	Project     string
	Documents   []model.DocumentSummary
	HasPrevious bool
	HasNext     bool
	Status      Status
}

func (v View) CanPrevious() bool {
	return v.HasPrevious && len(v.Documents) > 0
}

func (v View) CanNext() bool {
	return v.HasNext && len(v.Documents) > 0
}
