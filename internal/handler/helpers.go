package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/machipost-dev/machipost/internal/errors"
)

// idParam extracts a numeric URL parameter, mapping garbage to a 400.
func idParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.BadRequest("invalid " + name + ": must be an integer")
	}
	return id, nil
}
