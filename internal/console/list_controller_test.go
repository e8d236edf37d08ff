package console

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"xetasuite/internal/models"
)

// fakeFetcher serves slices of a fixed dataset and records the params of
// every call.
type fakeFetcher struct {
	mu    sync.Mutex
	items []models.Item
	calls []models.ListParams
	fail  bool
}

func newFakeFetcher(total int) *fakeFetcher {
	f := &fakeFetcher{}
	for i := 1; i <= total; i++ {
		f.items = append(f.items, models.Item{ID: i, Name: "item"})
	}
	return f
}

func (f *fakeFetcher) fetch(_ context.Context, params models.ListParams) (Page[models.Item], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, params)

	if f.fail {
		return Page[models.Item]{}, errors.New("connection refused")
	}

	params = params.Normalize()
	start := params.Offset()
	end := start + params.PerPage
	if start > len(f.items) {
		start = len(f.items)
	}
	if end > len(f.items) {
		end = len(f.items)
	}
	return Page[models.Item]{
		Data: f.items[start:end],
		Meta: models.NewListMeta(params.Page, params.PerPage, len(f.items)),
	}, nil
}

func (f *fakeFetcher) setFail(fail bool) {
	f.mu.Lock()
	f.fail = fail
	f.mu.Unlock()
}

func (f *fakeFetcher) lastCall(t *testing.T) models.ListParams {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		t.Fatal("expected at least one fetch")
	}
	return f.calls[len(f.calls)-1]
}

func TestListControllerPagination(t *testing.T) {
	fetcher := newFakeFetcher(24)
	c := NewListController(fetcher.fetch)
	c.SetPerPage(8)

	if got := len(c.Items()); got != 8 {
		t.Fatalf("expected 8 items got %d", got)
	}
	meta := c.Meta()
	if meta.CurrentPage != 1 || meta.LastPage != 3 || meta.Total != 24 {
		t.Fatalf("expected meta {1 3 24} got %+v", meta)
	}

	c.HandlePageChange(3)
	meta = c.Meta()
	if meta.CurrentPage != 3 {
		t.Fatalf("expected page 3 got %d", meta.CurrentPage)
	}
	if got := len(c.Items()); got != 8 {
		t.Fatalf("expected 8 items on last page got %d", got)
	}
}

func TestListControllerSortToggle(t *testing.T) {
	fetcher := newFakeFetcher(24)
	c := NewListController(fetcher.fetch)
	c.SetPerPage(8)

	c.HandleSort("name")
	params := c.Params()
	if params.SortBy != "name" || params.SortDir != models.SortAsc {
		t.Fatalf("expected name asc got %s %s", params.SortBy, params.SortDir)
	}

	// toggling the active field is a filter change like any other, so the
	// page resets too
	c.HandlePageChange(3)
	c.HandleSort("name")
	params = c.Params()
	if params.SortDir != models.SortDesc {
		t.Fatalf("expected desc after toggle got %s", params.SortDir)
	}
	if params.Page != 1 {
		t.Fatalf("expected page reset on toggle got %d", params.Page)
	}

	c.HandleSort("name")
	params = c.Params()
	if params.SortDir != models.SortAsc {
		t.Fatalf("expected asc after second toggle got %s", params.SortDir)
	}
}

func TestListControllerSortFieldChangeResetsPage(t *testing.T) {
	fetcher := newFakeFetcher(24)
	c := NewListController(fetcher.fetch)
	c.SetPerPage(8)
	c.HandlePageChange(3)

	c.HandleSort("price")
	params := c.Params()
	if params.Page != 1 {
		t.Fatalf("expected page reset to 1 got %d", params.Page)
	}
	if params.SortBy != "price" || params.SortDir != models.SortAsc {
		t.Fatalf("expected price asc got %s %s", params.SortBy, params.SortDir)
	}
}

func TestListControllerSetFilter(t *testing.T) {
	fetcher := newFakeFetcher(24)
	c := NewListController(fetcher.fetch)
	c.SetPerPage(8)
	c.HandlePageChange(3)

	c.SetFilter("resolved", "true")
	params := c.Params()
	if params.Filter("resolved") != "true" {
		t.Fatalf("expected resolved filter got %+v", params.Filters)
	}
	if params.Page != 1 {
		t.Fatalf("expected page reset on filter change got %d", params.Page)
	}
	last := fetcher.lastCall(t)
	if last.Filter("resolved") != "true" {
		t.Fatalf("expected filter passed to fetch got %+v", last.Filters)
	}

	c.SetFilter("resolved", "")
	if got := c.Params().Filter("resolved"); got != "" {
		t.Fatalf("expected filter cleared got %q", got)
	}
}

func TestListControllerSearchDebounce(t *testing.T) {
	fetcher := newFakeFetcher(5)
	c := NewListController(fetcher.fetch)
	c.SetDebounce(20 * time.Millisecond)
	c.Refresh(context.Background())

	// rapid keystrokes: only the final term should reach the fetcher
	c.SetSearch("m")
	c.SetSearch("mo")
	c.SetSearch("mop")

	time.Sleep(100 * time.Millisecond)

	last := fetcher.lastCall(t)
	if last.Search != "mop" {
		t.Fatalf("expected search mop got %q", last.Search)
	}
	if last.Page != 1 {
		t.Fatalf("expected page reset on search got %d", last.Page)
	}

	fetcher.mu.Lock()
	calls := len(fetcher.calls)
	fetcher.mu.Unlock()
	if calls != 2 {
		t.Fatalf("expected 2 fetches (initial + debounced) got %d", calls)
	}
}

func TestListControllerSetParams(t *testing.T) {
	fetcher := newFakeFetcher(24)
	c := NewListController(fetcher.fetch)
	c.SetParams(models.ListParams{Page: 2, PerPage: 8, SortBy: "name", SortDir: models.SortDesc})
	c.Refresh(context.Background())

	last := fetcher.lastCall(t)
	if last.Page != 2 || last.PerPage != 8 || last.SortBy != "name" || last.SortDir != models.SortDesc {
		t.Fatalf("expected seeded params got %+v", last)
	}
	if got := len(c.Items()); got != 8 {
		t.Fatalf("expected 8 items got %d", got)
	}
}

func TestListControllerFailureKeepsItems(t *testing.T) {
	fetcher := newFakeFetcher(5)
	c := NewListController(fetcher.fetch)
	c.Refresh(context.Background())

	if got := len(c.Items()); got != 5 {
		t.Fatalf("expected 5 items got %d", got)
	}

	fetcher.setFail(true)
	c.Refresh(context.Background())

	if got := len(c.Items()); got != 5 {
		t.Fatalf("expected previous items kept got %d", got)
	}
	if c.Err() == "" {
		t.Fatal("expected error recorded")
	}

	fetcher.setFail(false)
	c.Refresh(context.Background())
	if c.Err() != "" {
		t.Fatalf("expected error cleared got %q", c.Err())
	}
}
