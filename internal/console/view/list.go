// Package view holds the per-workspace state of the console pages and the
// rules for mutating it from backend results.
//
// Views never hold their lock across a backend call. Every call captures a
// ticket (Load or Flight) before it leaves and presents it when the result
// comes back; a ticket that no longer matches means the result is discarded.
//
// Fetches run on the request context and are dropped without a notice when
// that request is gone. Writes are detached from it so a write the backend
// accepted is never reported as a network failure.
package view

import "errors"

var (
	// ErrBusy rejects per-item actions while the list is loading.
	ErrBusy = errors.New("view: list is loading")
	// ErrInFlight rejects a second action on an item whose first action has
	// not resolved yet.
	ErrInFlight = errors.New("view: action already in flight")
)

// Identifiable items are matched by identifier, never by position.
type Identifiable interface {
	Identity() int64
}

// Load is the ticket of one fetch-all.
type Load struct {
	generation uint64
}

// Flight is the ticket of one per-item action.
type Flight struct {
	ID    int64
	epoch uint64
}

// List is the shared list discipline of every page. It is not safe for
// concurrent use; the owning view serialises access.
type List[T Identifiable] struct {
	items    []T
	loading  bool
	inFlight map[int64]struct{}

	// generation changes on every BeginLoad and Reset.
	generation uint64
	// epoch changes on Reset only.
	epoch uint64
}

// BeginLoad enters Loading and invalidates any fetch still outstanding.
func (l *List[T]) BeginLoad() Load {
	l.generation++
	l.loading = true
	return Load{generation: l.generation}
}

// Finish replaces the whole sequence with items. It reports false, leaving
// the list untouched, when ld is stale.
func (l *List[T]) Finish(ld Load, items []T) bool {
	if ld.generation != l.generation {
		return false
	}
	l.items = append([]T(nil), items...)
	l.loading = false
	return true
}

// Abort leaves Loading after a failed fetch. It reports false when ld is stale.
func (l *List[T]) Abort(ld Load) bool {
	if ld.generation != l.generation {
		return false
	}
	l.loading = false
	return true
}

func (l *List[T]) Loading() bool { return l.loading }

// Begin marks id as in flight.
func (l *List[T]) Begin(id int64) (Flight, error) {
	if l.loading {
		return Flight{}, ErrBusy
	}
	if _, ok := l.inFlight[id]; ok {
		return Flight{}, ErrInFlight
	}
	if l.inFlight == nil {
		l.inFlight = make(map[int64]struct{})
	}
	l.inFlight[id] = struct{}{}
	return Flight{ID: id, epoch: l.epoch}, nil
}

// End clears the flight. It reports false when the list was reset after
// Begin; the caller must then discard the result.
func (l *List[T]) End(f Flight) bool {
	if f.epoch != l.epoch {
		return false
	}
	delete(l.inFlight, f.ID)
	return true
}

func (l *List[T]) InFlight(id int64) bool {
	_, ok := l.inFlight[id]
	return ok
}

// Items returns a copy of the current sequence.
func (l *List[T]) Items() []T {
	return append([]T(nil), l.items...)
}

func (l *List[T]) Len() int { return len(l.items) }

func (l *List[T]) Index(id int64) int {
	for i, it := range l.items {
		if it.Identity() == id {
			return i
		}
	}
	return -1
}

func (l *List[T]) Find(id int64) (T, bool) {
	if i := l.Index(id); i >= 0 {
		return l.items[i], true
	}
	var zero T
	return zero, false
}

// Append adds item at the end unless an item with the same id is present.
func (l *List[T]) Append(item T) bool {
	if l.Index(item.Identity()) >= 0 {
		return false
	}
	l.items = append(l.items, item)
	return true
}

// Remove deletes the item with the given id and returns its former index.
func (l *List[T]) Remove(id int64) (int, bool) {
	i := l.Index(id)
	if i < 0 {
		return -1, false
	}
	l.items = append(l.items[:i:i], l.items[i+1:]...)
	return i, true
}

// Update replaces the item carrying the same id in place.
func (l *List[T]) Update(item T) bool {
	i := l.Index(item.Identity())
	if i < 0 {
		return false
	}
	l.items[i] = item
	return true
}

// Reset empties the list and invalidates every outstanding ticket.
func (l *List[T]) Reset() {
	l.items = nil
	l.loading = false
	l.inFlight = nil
	l.generation++
	l.epoch++
}
