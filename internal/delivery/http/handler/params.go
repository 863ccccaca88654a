package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

// pathID extracts the {id} route variable as a positive integer.
func pathID(r *http.Request) (int, bool) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// pagination reads offset/limit query params, falling back to sane defaults
// and clamping the limit.
func pagination(r *http.Request) (offset, limit int) {
	offset = 0
	limit = defaultListLimit

	if v := r.URL.Query().Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			offset = parsed
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return offset, limit
}
