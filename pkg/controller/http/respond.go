package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hazop-lab/hazgrid/pkg/domain/model"
	"github.com/hazop-lab/hazgrid/pkg/repository"
	"github.com/hazop-lab/hazgrid/pkg/usecase"
	"github.com/hazop-lab/hazgrid/pkg/utils/errutil"
	"github.com/hazop-lab/hazgrid/pkg/utils/safe"
)

func respondJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		errutil.Handle(ctx, err, "failed to encode response")
	}
}

// respondError maps domain sentinels to status codes; everything else is an
// internal error.
func respondError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		errutil.HandleHTTP(ctx, w, err, http.StatusNotFound)
	case errors.Is(err, model.ErrInvalidDocument),
		errors.Is(err, model.ErrInvalidMatrixConfig),
		errors.Is(err, usecase.ErrTitleRequired),
		errors.Is(err, usecase.ErrInvalidMatrix):
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
	default:
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
	}
}

func respondRaw(ctx context.Context, w http.ResponseWriter, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	safe.Write(ctx, w, data)
}
