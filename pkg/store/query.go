package store

import "context"

// Query is a composable read over one table. Build it with OrderBy or Where,
// optionally chain Reverse and Limit, then call ToSlice or First.
type Query[T any] struct {
	t       *Table[T]
	orderBy string
	field   string
	value   string
	filter  bool
	reverse bool
	limit   int
}

// OrderBy sorts results ascending by field, ties broken by id.
func (q *Query[T]) OrderBy(field string) *Query[T] {
	q.orderBy = field
	return q
}

// Where keeps only records whose field equals value. Result order is
// unspecified unless OrderBy is also set.
func (q *Query[T]) Where(field, value string) *Query[T] {
	q.field = field
	q.value = value
	q.filter = true
	return q
}

// Reverse flips the result order.
func (q *Query[T]) Reverse() *Query[T] {
	q.reverse = !q.reverse
	return q
}

// Limit caps the number of results. Zero or less means no cap.
func (q *Query[T]) Limit(n int) *Query[T] {
	q.limit = n
	return q
}

// ToSlice runs the query.
func (q *Query[T]) ToSlice(ctx context.Context) ([]T, error) {
	var match, order func(T) string
	var err error
	if q.filter {
		if match, err = q.t.fieldKey(q.field); err != nil {
			return nil, err
		}
	}
	if q.orderBy != "" {
		if order, err = q.t.fieldKey(q.orderBy); err != nil {
			return nil, err
		}
	}

	all, err := q.t.scan(ctx)
	if err != nil {
		return nil, err
	}

	out := all
	if match != nil {
		out = all[:0]
		for _, rec := range all {
			if match(rec) == q.value {
				out = append(out, rec)
			}
		}
	}
	if order != nil {
		sortRecords(out, order, q.t.ident)
	}
	if q.reverse {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	if q.limit > 0 && len(out) > q.limit {
		out = out[:q.limit]
	}
	return out, nil
}

// First returns the first result, and false when the query matched nothing.
func (q *Query[T]) First(ctx context.Context) (T, bool, error) {
	var zero T
	out, err := q.Limit(1).ToSlice(ctx)
	if err != nil || len(out) == 0 {
		return zero, false, err
	}
	return out[0], true, nil
}
