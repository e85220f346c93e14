package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/hazop-lab/hazgrid/pkg/domain/model"
	"github.com/hazop-lab/hazgrid/pkg/utils/errutil"
)

func (s *Server) getMatrix(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	matrix, err := s.uc.Matrix.Get(ctx)
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, matrix)
}

func (s *Server) updateMatrix(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var matrix model.RiskMatrix
	if err := json.NewDecoder(r.Body).Decode(&matrix); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "invalid matrix payload"), http.StatusBadRequest)
		return
	}

	updated, err := s.uc.Matrix.Update(ctx, &matrix)
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, updated)
}

func (s *Server) exportMatrixConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data, err := s.uc.Matrix.ExportConfig(ctx)
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	respondRaw(ctx, w, "application/json", data)
}

func (s *Server) importMatrixConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data, err := io.ReadAll(r.Body)
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to read matrix config"), http.StatusBadRequest)
		return
	}

	matrix, err := s.uc.Matrix.ImportConfig(ctx, data)
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, matrix)
}
