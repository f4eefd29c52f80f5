// Package pager implements windowed loading of large remote collections.
package pager

import (
	"context"
	"slices"
	"sync"
)

// DefaultPageSize is used when no explicit window size is configured.
const DefaultPageSize = 25

// Fetched is one retrieved window of a remote listing.
type Fetched[T any] struct {
	// Items are the elements of this window, in server order.
	Items []T
	// Total is the collection size; valid only when HasTotal. Servers report
	// it only when the fetch asked for it.
	Total    int
	HasTotal bool
}

// FetchFunc retrieves one window at the given offset. needTotal is set on
// the first fetch only; the response must then carry the collection size.
type FetchFunc[T any] func(ctx context.Context, filter string, limit, offset int, needTotal bool) (Fetched[T], error)

// Option configures a Pager.
type Option[T any] func(*Pager[T])

// WithMarkers supplies the factories for the synthetic trailing elements:
// more produces the continuation marker shown while further windows remain,
// empty produces the single empty-state marker of a collection with no
// elements. Without markers the display sequence holds real items only.
func WithMarkers[T any](more, empty func() T) Option[T] {
	return func(p *Pager[T]) {
		p.more = more
		p.empty = empty
	}
}

// Pager incrementally materializes a remote collection in fixed-size
// windows. Any node kind can embed paging by delegating to one Pager; state
// is self-contained and every mutating entry point is serialized.
//
// The collection size is captured from the first window's response and never
// re-read, except that an empty window clamps it to the items already loaded;
// if the remote collection changes while paging, Reset and re-page.
type Pager[T any] struct {
	fetch    FetchFunc[T]
	pageSize int
	filter   string
	more     func() T
	empty    func() T

	mu       sync.Mutex
	items    []T
	offset   int
	total    int
	hasTotal bool
	// pinned is set once a zero-total response arrives: the collection is
	// empty, the display shows the empty-state marker and paging is over.
	pinned bool
}

// New creates a Pager over fetch. filter is passed through opaquely on every
// fetch; the empty string matches everything.
func New[T any](pageSize int, filter string, fetch FetchFunc[T], opts ...Option[T]) *Pager[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	p := &Pager[T]{
		fetch:    fetch,
		pageSize: pageSize,
		filter:   filter,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// LoadMore fetches the next window and appends it to the accumulated
// sequence. Concurrent calls are serialized: a call arriving while another
// is in flight queues behind it and then operates on the advanced state.
// On a fetch error the pager state is unchanged, so the caller may retry
// the same call.
func (p *Pager[T]) LoadMore(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pinned {
		return nil
	}

	needTotal := !p.hasTotal
	w, err := p.fetch(ctx, p.filter, p.pageSize, p.offset, needTotal)
	if err != nil {
		return err
	}

	if needTotal && w.HasTotal {
		p.total = w.Total
		p.hasTotal = true
	}

	if p.hasTotal && p.total == 0 {
		p.pinned = true
		return nil
	}

	if len(w.Items) == 0 {
		// The remote collection shrank below the captured total. The listing
		// is exhausted at its current length; re-fetching the same window
		// would loop forever.
		p.total = len(p.items)
		if p.total == 0 {
			p.pinned = true
		}
		return nil
	}

	p.items = append(p.items, w.Items...)
	p.offset += p.pageSize
	return nil
}

// Reset clears all accumulated state so the collection can be re-paged from
// the start. Use it when the remote collection may have changed.
func (p *Pager[T]) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.items = nil
	p.offset = 0
	p.total = 0
	p.hasTotal = false
	p.pinned = false
}

// Items returns the display sequence: the accumulated real items, followed
// by the continuation marker while more windows remain, or the single
// empty-state marker for an empty collection.
func (p *Pager[T]) Items() []T {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pinned {
		if p.empty == nil {
			return nil
		}
		return []T{p.empty()}
	}

	out := slices.Clone(p.items)
	if p.hasMoreLocked() && p.more != nil {
		out = append(out, p.more())
	}
	return out
}

// Len returns the number of real items loaded so far (markers excluded).
func (p *Pager[T]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.items)
}

// HasMore reports whether further windows remain. It is false until the
// first window has established the collection size.
func (p *Pager[T]) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hasMoreLocked()
}

// Total returns the captured collection size and whether it is known yet.
func (p *Pager[T]) Total() (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.total, p.hasTotal
}

func (p *Pager[T]) hasMoreLocked() bool {
	return p.hasTotal && !p.pinned && p.total > len(p.items)
}
