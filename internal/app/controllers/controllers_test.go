package controllers

import (
	"testing"

	"github.com/kaanb/courseboard/internal/app/models/dto"
)

func TestBuildPageLinksEscapesFilterValues(t *testing.T) {
	pagination := &dto.PaginationInfo{CurrentPage: 2, TotalPages: 3, PageSize: 10, TotalItems: 25}

	links := buildPageLinks("/api/v1/courses", pagination, map[string]string{
		"subject": "C S",
		"term":    "fa26&sp27",
		"number":  "",
	})

	// url.Values.Encode emits keys alphabetically; empty filters are dropped.
	wantFirst := "/api/v1/courses?page=1&subject=C+S&term=fa26%26sp27"
	if links.FirstPage != wantFirst {
		t.Errorf("FirstPage = %q, want %q", links.FirstPage, wantFirst)
	}
	if links.PrevPage != wantFirst {
		t.Errorf("PrevPage = %q, want %q", links.PrevPage, wantFirst)
	}

	wantLast := "/api/v1/courses?page=3&subject=C+S&term=fa26%26sp27"
	if links.NextPage != wantLast {
		t.Errorf("NextPage = %q, want %q", links.NextPage, wantLast)
	}
	if links.LastPage != wantLast {
		t.Errorf("LastPage = %q, want %q", links.LastPage, wantLast)
	}
}

func TestBuildPageLinksBoundaryPages(t *testing.T) {
	firstPage := buildPageLinks("/api/v1/courses", &dto.PaginationInfo{CurrentPage: 1, TotalPages: 3, PageSize: 10, TotalItems: 25}, nil)
	if firstPage.PrevPage != "" {
		t.Errorf("PrevPage = %q on the first page, want empty", firstPage.PrevPage)
	}
	if firstPage.NextPage != "/api/v1/courses?page=2" {
		t.Errorf("NextPage = %q, want page 2", firstPage.NextPage)
	}

	lastPage := buildPageLinks("/api/v1/courses", &dto.PaginationInfo{CurrentPage: 3, TotalPages: 3, PageSize: 10, TotalItems: 25}, nil)
	if lastPage.NextPage != "" {
		t.Errorf("NextPage = %q on the last page, want empty", lastPage.NextPage)
	}
	if lastPage.PrevPage != "/api/v1/courses?page=2" {
		t.Errorf("PrevPage = %q, want page 2", lastPage.PrevPage)
	}
}
