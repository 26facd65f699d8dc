package util

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const (
	DefaultSkip  = 0
	DefaultLimit = 100
)

type Page struct {
	Skip  int
	Limit int
}

// ParsePage reads skip and limit from the query string. Values are not bounded:
// a negative limit means "no limit" to the storage layer.
func ParsePage(r *http.Request) (Page, error) {
	page := Page{Skip: DefaultSkip, Limit: DefaultLimit}

	q := r.URL.Query()
	if v := q.Get("skip"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Page{}, fmt.Errorf("skip must be an integer")
		}
		page.Skip = n
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Page{}, fmt.Errorf("limit must be an integer")
		}
		page.Limit = n
	}
	return page, nil
}

func ParseID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	if raw == "" {
		return 0, fmt.Errorf("%s required", param)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", param)
	}
	return id, nil
}
