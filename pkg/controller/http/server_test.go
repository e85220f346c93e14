package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	server "github.com/hazop-lab/hazgrid/pkg/controller/http"
	"github.com/hazop-lab/hazgrid/pkg/domain/model"
	"github.com/hazop-lab/hazgrid/pkg/repository/memory"
	"github.com/hazop-lab/hazgrid/pkg/usecase"
)

func newServer(t *testing.T) *server.Server {
	t.Helper()
	uc := usecase.New(memory.New(), usecase.WithLayoutDelay(time.Millisecond))
	t.Cleanup(uc.Close)
	return server.New(uc)
}

func doJSON(t *testing.T, s *server.Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data := gt.R1(json.Marshal(body)).NoError(t)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestHazardAPI(t *testing.T) {
	t.Run("create, get, update, delete", func(t *testing.T) {
		s := newServer(t)

		rec := doJSON(t, s, http.MethodPost, "/api/hazards", model.NewHazard("Pump overpressure"))
		gt.Number(t, rec.Code).Equal(http.StatusCreated)

		var created model.Hazard
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		gt.Value(t, created.Title).Equal("Pump overpressure")

		rec = doJSON(t, s, http.MethodGet, "/api/hazards/"+created.ID.String(), nil)
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		created.Title = "Pump overpressure (revised)"
		rec = doJSON(t, s, http.MethodPut, "/api/hazards/"+created.ID.String(), created)
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		rec = doJSON(t, s, http.MethodDelete, "/api/hazards/"+created.ID.String(), nil)
		gt.Number(t, rec.Code).Equal(http.StatusNoContent)

		rec = doJSON(t, s, http.MethodGet, "/api/hazards/"+created.ID.String(), nil)
		gt.Number(t, rec.Code).Equal(http.StatusNotFound)
	})

	t.Run("create without title is a bad request", func(t *testing.T) {
		s := newServer(t)
		rec := doJSON(t, s, http.MethodPost, "/api/hazards", map[string]string{"description": "no title"})
		gt.Number(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("duplicate returns a fresh copy", func(t *testing.T) {
		s := newServer(t)
		rec := doJSON(t, s, http.MethodPost, "/api/hazards", model.NewHazard("Tank overflow"))
		var created model.Hazard
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

		rec = doJSON(t, s, http.MethodPost, "/api/hazards/"+created.ID.String()+"/duplicate", nil)
		gt.Number(t, rec.Code).Equal(http.StatusCreated)

		var copied model.Hazard
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &copied))
		gt.Value(t, copied.Title).Equal("Tank overflow (copy)")
		gt.Value(t, copied.ID == created.ID).Equal(false)
	})

	t.Run("layout endpoint returns allocations", func(t *testing.T) {
		s := newServer(t)
		h := model.NewHazard("Pump overpressure")
		h.Consequences = []model.Consequence{{ID: "x1", Text: "leak", Mitigations: []model.Measure{
			{ID: "m1"}, {ID: "m2"},
		}}}
		doJSON(t, s, http.MethodPost, "/api/hazards", h)

		rec := doJSON(t, s, http.MethodGet, "/api/layout", nil)
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		var layouts []map[string]any
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &layouts))
		gt.Array(t, layouts).Length(1)
		gt.Value(t, layouts[0]["rows"]).Equal(float64(2))
	})
}

func TestMatrixAPI(t *testing.T) {
	t.Run("get returns the default matrix", func(t *testing.T) {
		s := newServer(t)
		rec := doJSON(t, s, http.MethodGet, "/api/matrix", nil)
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		var m model.RiskMatrix
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
		gt.Array(t, m.Likelihood).Length(5)
	})

	t.Run("put rejects an empty scale", func(t *testing.T) {
		s := newServer(t)
		m := model.DefaultRiskMatrix()
		m.Severity = nil
		rec := doJSON(t, s, http.MethodPut, "/api/matrix", m)
		gt.Number(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("config round trips through the API", func(t *testing.T) {
		s := newServer(t)
		rec := doJSON(t, s, http.MethodGet, "/api/matrix/config", nil)
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		req := httptest.NewRequest(http.MethodPost, "/api/matrix/config", bytes.NewReader(rec.Body.Bytes()))
		rec2 := httptest.NewRecorder()
		s.ServeHTTP(rec2, req)
		gt.Number(t, rec2.Code).Equal(http.StatusOK)
	})
}

func TestDocumentAPI(t *testing.T) {
	t.Run("legacy array imports", func(t *testing.T) {
		s := newServer(t)
		req := httptest.NewRequest(http.MethodPost, "/api/document",
			bytes.NewReader([]byte(`[{"title": "Legacy hazard"}]`)))
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, req)
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		rec = doJSON(t, s, http.MethodGet, "/api/hazards", nil)
		var hazards []*model.Hazard
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hazards))
		gt.Array(t, hazards).Length(1)
	})

	t.Run("invalid document is a bad request", func(t *testing.T) {
		s := newServer(t)
		req := httptest.NewRequest(http.MethodPost, "/api/document",
			bytes.NewReader([]byte(`"nonsense"`)))
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, req)
		gt.Number(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("xlsx download carries the spreadsheet content type", func(t *testing.T) {
		s := newServer(t)
		doJSON(t, s, http.MethodPost, "/api/hazards", model.NewHazard("Pump overpressure"))

		rec := doJSON(t, s, http.MethodGet, "/api/export/xlsx", nil)
		gt.Number(t, rec.Code).Equal(http.StatusOK)
		gt.Value(t, rec.Header().Get("Content-Type")).
			Equal("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		gt.Number(t, rec.Body.Len()).Greater(0)
	})
}
