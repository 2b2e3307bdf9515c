package pagination

import "testing"

func TestNormalizeDefaults(t *testing.T) {
	p := Normalize(Params{})
	if p.Page != 1 || p.PerPage != DefaultPerPage {
		t.Fatalf("unexpected defaults %+v", p)
	}

	p = Normalize(Params{Page: 3, PerPage: 1000})
	if p.PerPage != MaxPerPage {
		t.Fatalf("expected per-page cap, got %d", p.PerPage)
	}
}

func TestSliceBounds(t *testing.T) {
	cases := []struct {
		name       string
		page       int
		perPage    int
		total      int
		start, end int
		totalPages int
	}{
		{"first page", 1, 10, 25, 0, 10, 3},
		{"middle page", 2, 10, 25, 10, 20, 3},
		{"ragged last page", 3, 10, 25, 20, 25, 3},
		{"past the end", 9, 10, 25, 25, 25, 3},
		{"empty set", 1, 10, 0, 0, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end, meta := Slice(Params{Page: tc.page, PerPage: tc.perPage}, tc.total)
			if start != tc.start || end != tc.end {
				t.Fatalf("bounds = [%d,%d), want [%d,%d)", start, end, tc.start, tc.end)
			}
			if meta.TotalPages != tc.totalPages {
				t.Fatalf("total pages = %d, want %d", meta.TotalPages, tc.totalPages)
			}
			if meta.TotalItems != tc.total {
				t.Fatalf("total items = %d, want %d", meta.TotalItems, tc.total)
			}
		})
	}
}
