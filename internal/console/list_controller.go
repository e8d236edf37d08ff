package console

import (
	"context"
	"sync"
	"time"

	"xetasuite/internal/models"
)

// searchDebounce is how long the controller waits after the last keystroke
// before firing the search request.
const searchDebounce = 300 * time.Millisecond

// ListFetcher loads one page of a listing.
type ListFetcher[T any] func(ctx context.Context, params models.ListParams) (Page[T], error)

// ListController drives a paginated, searchable, sortable listing. It owns
// the query state, debounces search input, and keeps the last good page
// visible when a fetch fails.
type ListController[T any] struct {
	fetch    ListFetcher[T]
	debounce time.Duration

	mu       sync.Mutex
	params   models.ListParams
	items    []T
	meta     models.ListMeta
	loading  bool
	lastErr  string
	timer    *time.Timer
	seq      int
	onChange func()
}

func NewListController[T any](fetch ListFetcher[T]) *ListController[T] {
	return &ListController[T]{
		fetch:    fetch,
		debounce: searchDebounce,
		params:   models.ListParams{}.Normalize(),
	}
}

// SetDebounce overrides the search debounce interval.
func (c *ListController[T]) SetDebounce(d time.Duration) {
	c.mu.Lock()
	c.debounce = d
	c.mu.Unlock()
}

// SetOnChange registers a callback invoked after every state change.
func (c *ListController[T]) SetOnChange(fn func()) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

func (c *ListController[T]) notifyLocked() {
	if c.onChange != nil {
		go c.onChange()
	}
}

// Refresh fetches the current page. A failed fetch records the error and
// leaves the previously loaded items in place.
func (c *ListController[T]) Refresh(ctx context.Context) {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	params := c.params
	c.loading = true
	c.notifyLocked()
	c.mu.Unlock()

	page, err := c.fetch(ctx, params)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		// a newer request superseded this one
		return
	}
	c.loading = false
	if err != nil {
		c.lastErr = err.Error()
	} else {
		c.lastErr = ""
		c.items = page.Data
		c.meta = page.Meta
	}
	c.notifyLocked()
}

// SetSearch updates the search term. The fetch is debounced and the page
// resets to 1 so results start from the beginning.
func (c *ListController[T]) SetSearch(term string) {
	c.mu.Lock()
	c.params.Search = term
	c.params.Page = 1
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.debounce, func() {
		c.Refresh(context.Background())
	})
	c.mu.Unlock()
}

// HandleSort sorts by the given field. Sorting the same field again flips
// the direction; a new field starts ascending. Either way the page resets
// to 1, like every other filter change.
func (c *ListController[T]) HandleSort(field string) {
	c.mu.Lock()
	if c.params.SortBy == field {
		if c.params.SortDir == models.SortAsc {
			c.params.SortDir = models.SortDesc
		} else {
			c.params.SortDir = models.SortAsc
		}
	} else {
		c.params.SortBy = field
		c.params.SortDir = models.SortAsc
	}
	c.params.Page = 1
	c.mu.Unlock()

	c.Refresh(context.Background())
}

// SetFilter sets or clears a named filter and refetches from page 1. An
// empty value removes the filter. The filter map is copied so snapshots
// taken by in-flight fetches stay stable.
func (c *ListController[T]) SetFilter(key, value string) {
	c.mu.Lock()
	filters := make(map[string]string, len(c.params.Filters)+1)
	for k, v := range c.params.Filters {
		filters[k] = v
	}
	if value == "" {
		delete(filters, key)
	} else {
		filters[key] = value
	}
	c.params.Filters = filters
	c.params.Page = 1
	c.mu.Unlock()

	c.Refresh(context.Background())
}

// SetParams replaces the whole query state without refetching. Used by
// callers that collect all parameters up front, like the CLI views.
func (c *ListController[T]) SetParams(params models.ListParams) {
	c.mu.Lock()
	c.params = params.Normalize()
	c.mu.Unlock()
}

func (c *ListController[T]) HandlePageChange(page int) {
	c.mu.Lock()
	if page < 1 {
		page = 1
	}
	c.params.Page = page
	c.mu.Unlock()

	c.Refresh(context.Background())
}

// SetPerPage changes the page size and resets to the first page.
func (c *ListController[T]) SetPerPage(perPage int) {
	c.mu.Lock()
	c.params.PerPage = perPage
	c.params = c.params.Normalize()
	c.params.Page = 1
	c.mu.Unlock()

	c.Refresh(context.Background())
}

func (c *ListController[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items
}

func (c *ListController[T]) Meta() models.ListMeta {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.meta
}

func (c *ListController[T]) Params() models.ListParams {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.params
}

func (c *ListController[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Err is the message from the most recent failed fetch, empty after a
// successful one.
func (c *ListController[T]) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}
