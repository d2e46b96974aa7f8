package pagination

// Page is one id-ascending batch plus boundary flags.
type Page[T any] struct {
	Items       []T
	HasPrevious bool
	HasNext     bool
}

func (p Page[T]) Len() int {
	return len(p.Items)
}

func (p Page[T]) First() (T, bool) {
	var zero T
	if len(p.Items) == 0 {
		return zero, false
	}
	return p.Items[0], true
}

func (p Page[T]) Last() (T, bool) {
	var zero T
	if len(p.Items) == 0 {
		return zero, false
	}
	return p.Items[len(p.Items)-1], true
}
