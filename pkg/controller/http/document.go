package http

import (
	"io"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/hazop-lab/hazgrid/pkg/utils/errutil"
	"github.com/hazop-lab/hazgrid/pkg/utils/safe"
)

func (s *Server) exportDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data, err := s.uc.Document.Export(ctx)
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="hazards.json"`)
	respondRaw(ctx, w, "application/json", data)
}

func (s *Server) importDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data, err := io.ReadAll(r.Body)
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to read document"), http.StatusBadRequest)
		return
	}

	doc, err := s.uc.Document.Import(ctx, data)
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, doc)
}

func (s *Server) exportWorkbook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	buf, err := s.uc.Export.Workbook(ctx)
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="hazards.xlsx"`)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	safe.Copy(ctx, w, buf)
}
