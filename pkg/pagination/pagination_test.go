package pagination

import "testing"

func TestNormalizeCoercesInvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"defaults", 0, 0, DefaultPage, DefaultLimit},
		{"negative", -3, -1, DefaultPage, DefaultLimit},
		{"passthrough", 4, 25, 4, 25},
		{"limit capped", 1, 500, 1, MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := Normalize(tt.page, tt.limit)
			if params.Page != tt.wantPage || params.Limit != tt.wantLimit {
				t.Fatalf("Normalize(%d, %d) = %+v", tt.page, tt.limit, params)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	if got := (Params{Page: 1, Limit: 10}).Offset(); got != 0 {
		t.Fatalf("expected offset 0, got %d", got)
	}
	if got := (Params{Page: 3, Limit: 10}).Offset(); got != 20 {
		t.Fatalf("expected offset 20, got %d", got)
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{100, 100, 1},
	}
	for _, tt := range tests {
		params := Params{Page: 1, Limit: tt.limit}
		if got := params.TotalPages(tt.total); got != tt.want {
			t.Fatalf("TotalPages(%d) with limit %d = %d, want %d", tt.total, tt.limit, got, tt.want)
		}
	}
}
