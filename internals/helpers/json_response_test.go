// file: internals/helpers/json_response_test.go
package helper

import "testing"

func TestBuildPaginationFromPage(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		page       int
		perPage    int
		wantPages  int
		wantHasNxt bool
		wantHasPrv bool
	}{
		{"empty result still one page", 0, 1, 10, 1, false, false},
		{"exact multiple", 20, 1, 10, 2, true, false},
		{"partial last page", 15, 2, 10, 2, false, true},
		{"single page", 5, 1, 10, 1, false, false},
		{"middle page", 35, 2, 10, 4, true, true},
		{"zero per_page falls back", 45, 1, 0, 3, true, false},
		{"zero page treated as first", 10, 0, 10, 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildPaginationFromPage(tt.total, tt.page, tt.perPage)
			if got.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", got.TotalPages, tt.wantPages)
			}
			if got.HasNext != tt.wantHasNxt {
				t.Errorf("HasNext = %v, want %v", got.HasNext, tt.wantHasNxt)
			}
			if got.HasPrev != tt.wantHasPrv {
				t.Errorf("HasPrev = %v, want %v", got.HasPrev, tt.wantHasPrv)
			}
			if got.Total != tt.total {
				t.Errorf("Total = %d, want %d", got.Total, tt.total)
			}
		})
	}
}
