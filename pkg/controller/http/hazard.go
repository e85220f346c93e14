package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/hazop-lab/hazgrid/pkg/domain/model"
	"github.com/hazop-lab/hazgrid/pkg/domain/types"
	"github.com/hazop-lab/hazgrid/pkg/utils/errutil"
)

func (s *Server) listHazards(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	hazards, err := s.uc.Hazard.List(ctx)
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, hazards)
}

func (s *Server) createHazard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var hazard model.Hazard
	if err := json.NewDecoder(r.Body).Decode(&hazard); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "invalid hazard payload"), http.StatusBadRequest)
		return
	}

	created, err := s.uc.Hazard.Create(ctx, &hazard)
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusCreated, created)
}

func (s *Server) getHazard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	hazard, err := s.uc.Hazard.Get(ctx, types.HazardID(chi.URLParam(r, "hazardID")))
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, hazard)
}

func (s *Server) updateHazard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var hazard model.Hazard
	if err := json.NewDecoder(r.Body).Decode(&hazard); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "invalid hazard payload"), http.StatusBadRequest)
		return
	}
	hazard.ID = types.HazardID(chi.URLParam(r, "hazardID"))

	updated, err := s.uc.Hazard.Update(ctx, &hazard)
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, updated)
}

func (s *Server) deleteHazard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := s.uc.Hazard.Delete(ctx, types.HazardID(chi.URLParam(r, "hazardID"))); err != nil {
		respondError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) duplicateHazard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	copied, err := s.uc.Hazard.Duplicate(ctx, types.HazardID(chi.URLParam(r, "hazardID")))
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusCreated, copied)
}

func (s *Server) getLayouts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	layouts, err := s.uc.Layout.Layouts(ctx)
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, layouts)
}
