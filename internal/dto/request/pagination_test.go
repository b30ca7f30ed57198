package request

import "testing"

func TestPaginationWindow(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		perPage    int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", 0, 0, 10, 0},
		{"first page", 1, 20, 20, 0},
		{"second page", 2, 20, 20, 20},
		{"per_page clamped high", 2, 1000, 100, 100},
		{"per_page clamped low", 3, 0, 10, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PaginatedRequest{Page: tt.page, PerPage: tt.perPage}
			if got := p.Limit(); got != tt.wantLimit {
				t.Errorf("Limit() = %d, want %d", got, tt.wantLimit)
			}
			// Offset must be derived from the clamped limit, never the
			// raw per_page, or pages would skip rows
			if got := p.Offset(); got != tt.wantOffset {
				t.Errorf("Offset() = %d, want %d", got, tt.wantOffset)
			}
		})
	}
}
