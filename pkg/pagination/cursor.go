package pagination

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// Query parameters of the document list endpoint.
const (
	PreviousIDParam = "previousID"
	IsForwardParam  = "isForward"
	PageSizeParam   = "pageSize"
)

type Direction int

const (
	DirectionUnspecified Direction = iota
	// DirectionAfter walks towards larger ids (Next).
	DirectionAfter
	// DirectionBefore walks towards smaller ids (Previous).
	DirectionBefore
)

var (
	ErrDirectionUnset = errors.New("direction must be set")
	ErrInvalidCursor  = errors.New("invalid cursor")
)

func (d Direction) String() string {
	switch d {
	case DirectionAfter:
		return "after"
	case DirectionBefore:
		return "before"
	default:
		return "unspecified"
	}
}

// DirectionFromIsForward maps the wire flag: isForward=true asks for the
// items preceding previousID.
func DirectionFromIsForward(isForward bool) Direction {
	if isForward {
		return DirectionBefore
	}
	return DirectionAfter
}

func (d Direction) IsForward() bool {
	return d == DirectionBefore
}

// Cursor points at a boundary document. A nil *Cursor means the first page.
type Cursor struct {
	PreviousID string
	Direction  Direction
}

func After(id string) *Cursor {
	return &Cursor{PreviousID: id, Direction: DirectionAfter}
}

func Before(id string) *Cursor {
	return &Cursor{PreviousID: id, Direction: DirectionBefore}
}

func (c *Cursor) Validate() error {
	if c.PreviousID == "" {
		return fmt.Errorf("%w: empty previous id", ErrInvalidCursor)
	}
	if c.Direction != DirectionAfter && c.Direction != DirectionBefore {
		return ErrDirectionUnset
	}
	return nil
}

func (c *Cursor) String() string {
	if c == nil {
		return "first"
	}
	return c.Direction.String() + ":" + c.PreviousID
}

// Encode writes the cursor into list query parameters. A nil cursor adds nothing.
func Encode(c *Cursor, q url.Values) {
	if c == nil {
		return
	}
	q.Set(PreviousIDParam, c.PreviousID)
	q.Set(IsForwardParam, strconv.FormatBool(c.Direction.IsForward()))
}

// Decode reads a cursor from list query parameters. isForward is ignored when
// previousID is absent, but must still be a valid bool.
func Decode(q url.Values) (*Cursor, error) {
	isForward := false
	if raw := q.Get(IsForwardParam); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: isForward %q", ErrInvalidCursor, raw)
		}
		isForward = v
	}

	previousID := q.Get(PreviousIDParam)
	if previousID == "" {
		return nil, nil
	}
	return &Cursor{
		PreviousID: previousID,
		Direction:  DirectionFromIsForward(isForward),
	}, nil
}
