package models

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   ListParams
		want ListParams
	}{
		{"defaults", ListParams{}, ListParams{Page: 1, PerPage: DefaultPerPage, SortDir: SortAsc}},
		{"negative page", ListParams{Page: -3}, ListParams{Page: 1, PerPage: DefaultPerPage, SortDir: SortAsc}},
		{"per page capped", ListParams{Page: 2, PerPage: 500}, ListParams{Page: 2, PerPage: MaxPerPage, SortDir: SortAsc}},
		{"bad sort dir", ListParams{Page: 1, PerPage: 10, SortDir: "sideways"}, ListParams{Page: 1, PerPage: 10, SortDir: SortAsc}},
		{"desc kept", ListParams{Page: 1, PerPage: 10, SortDir: SortDesc}, ListParams{Page: 1, PerPage: 10, SortDir: SortDesc}},
		{
			"filters kept",
			ListParams{Filters: map[string]string{"resolved": "true"}},
			ListParams{Page: 1, PerPage: DefaultPerPage, SortDir: SortAsc, Filters: map[string]string{"resolved": "true"}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalize()
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %+v got %+v", tc.want, got)
			}
		})
	}
}

func TestFilter(t *testing.T) {
	p := ListParams{Filters: map[string]string{"resolved": "false"}}
	if got := p.Filter("resolved"); got != "false" {
		t.Fatalf("expected false got %q", got)
	}
	if got := p.Filter("site_id"); got != "" {
		t.Fatalf("expected empty got %q", got)
	}
	if got := (ListParams{}).Filter("resolved"); got != "" {
		t.Fatalf("expected empty on nil map got %q", got)
	}
}

func TestOffset(t *testing.T) {
	p := ListParams{Page: 3, PerPage: 8}
	if got := p.Offset(); got != 16 {
		t.Fatalf("expected 16 got %d", got)
	}
}

func TestNewListMeta(t *testing.T) {
	cases := []struct {
		name    string
		page    int
		perPage int
		total   int
		want    ListMeta
	}{
		{"three pages", 1, 8, 24, ListMeta{CurrentPage: 1, LastPage: 3, Total: 24}},
		{"partial last page", 2, 10, 25, ListMeta{CurrentPage: 2, LastPage: 3, Total: 25}},
		{"empty list still one page", 1, 25, 0, ListMeta{CurrentPage: 1, LastPage: 1, Total: 0}},
		{"single row", 1, 25, 1, ListMeta{CurrentPage: 1, LastPage: 1, Total: 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NewListMeta(tc.page, tc.perPage, tc.total)
			if got != tc.want {
				t.Fatalf("expected %+v got %+v", tc.want, got)
			}
		})
	}
}
