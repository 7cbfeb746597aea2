package helpers

import "testing"

func TestPaginate(t *testing.T) {
	cases := []struct {
		name           string
		total          int64
		requestedPage  int
		pageSize       int
		wantPage       int
		wantTotalPages int
		wantOffset     uint64
	}{
		{"empty collection", 0, 1, 10, 1, 1, 0},
		{"empty collection high page", 0, 99, 10, 1, 1, 0},
		{"first page", 25, 1, 10, 1, 3, 0},
		{"middle page", 25, 2, 10, 2, 3, 10},
		{"last partial page", 25, 3, 10, 3, 3, 20},
		{"page past end clamps to last", 25, 99, 10, 3, 3, 20},
		{"zero page clamps to first", 25, 0, 10, 1, 3, 0},
		{"negative page clamps to first", 25, -4, 10, 1, 3, 0},
		{"exact multiple", 30, 3, 10, 3, 3, 20},
		{"single item", 1, 1, 10, 1, 1, 0},
		{"oversized page size falls back to default", 25, 2, 500, 2, 3, 10},
		{"zero page size falls back to default", 25, 1, 0, 1, 3, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, totalPages, offset := Paginate(tc.total, tc.requestedPage, tc.pageSize)
			if page != tc.wantPage {
				t.Errorf("page = %d, want %d", page, tc.wantPage)
			}
			if totalPages != tc.wantTotalPages {
				t.Errorf("totalPages = %d, want %d", totalPages, tc.wantTotalPages)
			}
			if offset != tc.wantOffset {
				t.Errorf("offset = %d, want %d", offset, tc.wantOffset)
			}
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(25, 2, 3, 10)
	if info.TotalItems != 25 || info.CurrentPage != 2 || info.TotalPages != 3 || info.PageSize != 10 {
		t.Errorf("unexpected pagination info: %+v", info)
	}
}
