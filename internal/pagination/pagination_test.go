package pagination

import "testing"

func TestWindow(t *testing.T) {
	tests := []struct {
		name        string
		total       int64
		perPage     int
		page        int
		wantLimit   int
		wantOffset  int
		wantCurrent int
	}{
		{name: "first page", total: 13, perPage: 10, page: 1, wantLimit: 10, wantOffset: 0, wantCurrent: 1},
		{name: "second page", total: 13, perPage: 10, page: 2, wantLimit: 10, wantOffset: 10, wantCurrent: 2},
		{name: "page beyond range clamps to last", total: 13, perPage: 10, page: 7, wantLimit: 10, wantOffset: 10, wantCurrent: 2},
		{name: "page below range clamps to first", total: 13, perPage: 10, page: 0, wantLimit: 10, wantOffset: 0, wantCurrent: 1},
		{name: "negative page", total: 13, perPage: 10, page: -3, wantLimit: 10, wantOffset: 0, wantCurrent: 1},
		{name: "empty set stays on page one", total: 0, perPage: 10, page: 5, wantLimit: 10, wantOffset: 0, wantCurrent: 1},
		{name: "non-positive per page falls back to default", total: 25, perPage: 0, page: 2, wantLimit: 10, wantOffset: 10, wantCurrent: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset, current := Window(tt.total, tt.perPage, tt.page)
			if limit != tt.wantLimit {
				t.Errorf("want limit %d, got %d", tt.wantLimit, limit)
			}
			if offset != tt.wantOffset {
				t.Errorf("want offset %d, got %d", tt.wantOffset, offset)
			}
			if current != tt.wantCurrent {
				t.Errorf("want current page %d, got %d", tt.wantCurrent, current)
			}
		})
	}
}

func TestNew(t *testing.T) {
	page := New([]int{10, 11, 12}, 13, 10, 2)
	if page.HasNext || !page.HasPrevious {
		t.Errorf("want hasNext=false hasPrevious=true, got hasNext=%v hasPrevious=%v", page.HasNext, page.HasPrevious)
	}
	if page.TotalCount != 13 || page.Number != 2 {
		t.Errorf("unexpected page: %+v", page)
	}

	empty := New[string](nil, 0, 10, 1)
	if empty.Items == nil {
		t.Error("want non-nil items for empty page")
	}
	if empty.Number != 1 || empty.HasNext || empty.HasPrevious {
		t.Errorf("unexpected empty page: %+v", empty)
	}
}
