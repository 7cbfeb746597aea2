// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kaanb/courseboard/internal/app/models/dto"
)

// parseIDParam parses a numeric path parameter. A syntactically invalid id
// can never name a resource, so it is reported as not found rather than as a
// malformed request.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found"),
		})
		return 0, false
	}
	return id, true
}

// buildPageLinks renders first/prev/next/last links for a paginated listing,
// preserving the given extra query parameters. Values are URL-escaped, so
// filters containing spaces or query metacharacters survive the round trip.
func buildPageLinks(path string, pagination *dto.PaginationInfo, extra map[string]string) *dto.PageLinks {
	render := func(page int) string {
		query := url.Values{"page": []string{strconv.Itoa(page)}}
		for k, v := range extra {
			if v != "" {
				query.Set(k, v)
			}
		}
		return path + "?" + query.Encode()
	}

	links := &dto.PageLinks{
		FirstPage: render(1),
		LastPage:  render(pagination.TotalPages),
	}
	if pagination.CurrentPage > 1 {
		links.PrevPage = render(pagination.CurrentPage - 1)
	}
	if pagination.CurrentPage < pagination.TotalPages {
		links.NextPage = render(pagination.CurrentPage + 1)
	}

	return links
}
