package handler

import (
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/agence/backend/internal/domain/shared"
)

var isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// parsePageParams reads the limit/offset query parameters. Absent or
// unparseable values fall back to the defaults; limit is clamped to at
// least 1 and offset is taken as-is.
func parsePageParams(c *gin.Context) shared.PageParams {
	params := shared.DefaultPageParams()
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			params.Limit = v
		}
	}
	if raw := c.Query("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			params.Offset = v
		}
	}
	return params.Normalize()
}

// parseISODate validates an optional YYYY-MM-DD query parameter. An empty
// value means the bound is not applied.
func parseISODate(c *gin.Context, name string) (string, error) {
	raw := c.Query(name)
	if raw == "" {
		return "", nil
	}
	if !isoDateRe.MatchString(raw) {
		return "", shared.NewValidationError(name, "YYYY-MM-DD format (e.g., 2024-01-01)")
	}
	return raw, nil
}

// queryList collects every occurrence of a repeatable query parameter.
func queryList(c *gin.Context, name string) []string {
	values := c.QueryArray(name)
	list := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			list = append(list, v)
		}
	}
	return list
}

// queryInt64List collects a repeatable numeric query parameter. Entries
// that do not parse are dropped silently rather than failing the request.
func queryInt64List(c *gin.Context, name string) []int64 {
	values := c.QueryArray(name)
	ids := make([]int64, 0, len(values))
	for _, v := range values {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}
