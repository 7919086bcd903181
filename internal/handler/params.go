package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

func parseIDParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// Snowflake ids exceed the safe integer range of JavaScript, so they go
// over the wire as strings.
func idToString(id int64) string {
	return strconv.FormatInt(id, 10)
}

func idsToStrings(ids []int64) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = idToString(id)
	}
	return out
}
