package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etnz/estate"
	"github.com/etnz/estate/config"
	"github.com/etnz/estate/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testNow = time.Date(2024, time.March, 2, 15, 4, 5, 0, time.UTC)

func newTestServer(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	s := store.New(store.NewMemoryBackend(), store.SampleSeed{}, log.New(io.Discard, "", 0))
	h := NewHandler(s, func() time.Time { return testNow })
	return NewRouter(h, config.DefaultConfig().Server), s
}

func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestGetSummary(t *testing.T) {
	r, _ := newTestServer(t)
	w := do(t, r, http.MethodGet, "/api/summary", "")
	require.Equal(t, http.StatusOK, w.Code)

	got := decode[map[string]any](t, w)
	assert.Equal(t, 783000.0, got["value"])
	assert.Equal(t, 645000.0, got["invested"])
	assert.Equal(t, 3280.0, got["monthlyCashflow"])
	assert.Equal(t, 5.03, got["capRate"])
	assert.Equal(t, 6.1, got["cashOnCash"])
	assert.Equal(t, 21.4, got["roi"])
}

func TestGetDashboard(t *testing.T) {
	r, _ := newTestServer(t)
	w := do(t, r, http.MethodGet, "/api/dashboard", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Greeting  string `json:"greeting"`
		Attention []struct {
			ID           string `json:"id"`
			PropertyName string `json:"propertyName"`
		} `json:"attention"`
		Portfolio []map[string]any `json:"portfolio"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Good Afternoon", got.Greeting)
	require.Len(t, got.Attention, 2)
	assert.Equal(t, "1", got.Attention[0].ID)
	assert.Equal(t, "Maple Street Duplex", got.Attention[0].PropertyName)
	require.Len(t, got.Portfolio, 3)
	assert.Equal(t, 2.0, got.Portfolio[0]["openRenovations"])
}

func TestProperties(t *testing.T) {
	r, s := newTestServer(t)

	w := do(t, r, http.MethodGet, "/api/properties", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 3)

	w = do(t, r, http.MethodGet, "/api/properties/2", "")
	require.Equal(t, http.StatusOK, w.Code)
	one := decode[map[string]json.RawMessage](t, w)
	assert.Contains(t, string(one["property"]), `"name":"Oak Park Townhome"`)
	assert.Contains(t, string(one["renovations"]), "HVAC System Replacement")

	w = do(t, r, http.MethodGet, "/api/properties/42", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodPost, "/api/properties", `{"name":"Elm Court","purchasePrice":"410,000","monthlyRent":"5200"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[map[string]json.RawMessage](t, w)
	assert.Contains(t, string(created["property"]), `"id":"1709391845000"`)
	assert.Contains(t, string(created["property"]), `"currentValue":410000`)
	assert.Len(t, s.LoadProperties(context.Background()).Value, 4)

	w = do(t, r, http.MethodPost, "/api/properties", `{"name":"No Price"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[map[string]string](t, w)["error"], "purchase price")

	// amounts can be posted as numbers, the way they are read back.
	w = do(t, r, http.MethodPost, "/api/properties", `{"name":"Birch Lane","purchasePrice":285000,"currentValue":300000.4,"units":2}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created = decode[map[string]json.RawMessage](t, w)
	assert.Contains(t, string(created["property"]), `"purchasePrice":285000`)
	assert.Contains(t, string(created["property"]), `"currentValue":300000,`)
	assert.Contains(t, string(created["property"]), `"units":2`)

	w = do(t, r, http.MethodPost, "/api/properties", `{"name":"Bool","purchasePrice":true}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, "/api/properties", `{{`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodDelete, "/api/properties/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 4)

	w = do(t, r, http.MethodDelete, "/api/properties/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// the renovations of the removed property are kept.
	w = do(t, r, http.MethodGet, "/api/renovations/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Unknown", decode[map[string]any](t, w)["propertyName"])
}

func TestRenovations(t *testing.T) {
	r, _ := newTestServer(t)

	testCases := []struct {
		query string
		want  []string
	}{
		{"", []string{"1", "2", "3", "4", "5", "6"}},
		{"?filter=high", []string{"1", "4"}},
		{"?filter=completed", []string{"3"}},
		{"?property=3", []string{"5", "6"}},
		{"?filter=pending&property=1", []string{"2"}},
	}
	for _, tc := range testCases {
		t.Run(tc.query, func(t *testing.T) {
			w := do(t, r, http.MethodGet, "/api/renovations"+tc.query, "")
			require.Equal(t, http.StatusOK, w.Code)
			var ids []string
			for _, r := range decode[[]map[string]any](t, w) {
				ids = append(ids, r["id"].(string))
			}
			assert.Equal(t, tc.want, ids)
		})
	}

	w := do(t, r, http.MethodGet, "/api/renovations?filter=cancelled", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodGet, "/api/renovations/filters", "")
	require.Equal(t, http.StatusOK, w.Code)
	chips := decode[[]estate.FilterChip](t, w)
	require.Len(t, chips, 5)
	assert.Equal(t, estate.FilterChip{Key: estate.FilterHigh, Label: "Urgent", Count: 2}, chips[3])

	w = do(t, r, http.MethodGet, "/api/renovations/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRenovationLifecycle(t *testing.T) {
	r, s := newTestServer(t)
	ctx := context.Background()

	w := do(t, r, http.MethodPost, "/api/renovations", `{"propertyId":"2","title":"Deck Stain","estimatedCost":"$900","dueDate":"2024-09-01"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[map[string]json.RawMessage](t, w)
	assert.Contains(t, string(created["renovation"]), `"status":"pending"`)
	assert.Contains(t, string(created["renovation"]), `"priority":"medium"`)
	assert.Contains(t, string(created["renovation"]), `"dueDate":"2024-09-01"`)

	w = do(t, r, http.MethodPost, "/api/renovations", `{"propertyId":"1","title":"Gutters","estimatedCost":450}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created = decode[map[string]json.RawMessage](t, w)
	assert.Contains(t, string(created["renovation"]), `"estimatedCost":450`)

	w = do(t, r, http.MethodPost, "/api/renovations", `{"title":"Orphan","dueDate":"soon"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPut, "/api/renovations/4/status", `{"status":"completed","actualCost":7600}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	rn, ok := s.LoadRenovations(ctx).Value.Find("4")
	require.True(t, ok)
	assert.Equal(t, estate.Completed, rn.Status)
	require.NotNil(t, rn.ActualCost)
	assert.True(t, rn.ActualCost.Equal(estate.M(7600)))

	w = do(t, r, http.MethodPut, "/api/renovations/4/status", `{"status":"cancelled"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPut, "/api/renovations/42/status", `{"status":"pending"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodDelete, "/api/renovations/4", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, s.LoadRenovations(ctx).Value, 7)

	w = do(t, r, http.MethodDelete, "/api/renovations/4", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOnboardingAndClear(t *testing.T) {
	r, s := newTestServer(t)
	ctx := context.Background()

	w := do(t, r, http.MethodGet, "/api/onboarded", "")
	assert.JSONEq(t, `{"onboarded":false}`, w.Body.String())

	w = do(t, r, http.MethodPut, "/api/onboarded", "")
	assert.JSONEq(t, `{"onboarded":true,"saved":true}`, w.Body.String())
	assert.True(t, s.Onboarded(ctx))

	w = do(t, r, http.MethodDelete, "/api/onboarded", "")
	assert.JSONEq(t, `{"onboarded":false,"saved":true}`, w.Body.String())

	do(t, r, http.MethodDelete, "/api/properties/3", "")
	w = do(t, r, http.MethodDelete, "/api/data", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, s.LoadProperties(ctx).Value, 3, "cleared data is seeded again")
}

func TestCORS(t *testing.T) {
	s := store.New(store.NewMemoryBackend(), nil, log.New(io.Discard, "", 0))
	r := NewRouter(NewHandler(s, nil), config.ServerConfig{AllowOrigins: []string{"http://localhost:5173"}})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, bytes.TrimSpace(w.Body.Bytes()))
}
