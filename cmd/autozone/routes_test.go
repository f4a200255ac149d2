package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autozonepro/internal/config"
	"autozonepro/internal/logger"
	"autozonepro/internal/service/courier"
	"autozonepro/internal/service/performance"
	"autozonepro/internal/storage"
	"autozonepro/internal/storage/memory"
)

func newTestRouter(t *testing.T) (http.Handler, *memory.Storage) {
	t.Helper()

	st := memory.New()
	cfg := &config.Config{StorageDriver: config.DriverMemory}

	opened, closeStorage, err := openStorage(context.Background(), cfg)
	require.NoError(t, err)
	closeStorage()
	assert.NotNil(t, opened)

	log := logger.Discard()
	return routes(*cfg, log, courier.NewService(log, st), performance.NewService(log, st)), st
}

func TestRoutes_CourierDetailsEndToEnd(t *testing.T) {
	router, st := newTestRouter(t)

	body := `{"sales_order": "SO-0001", "first_name": "Jane", "surname": "Doe", "tel_no": "082", "vehicle_no": "CA 1"}`

	for i, want := range []string{`"already_exists":false`, `"already_exists":true`} {
		req := httptest.NewRequest(http.MethodPost, "/api/method/create_courier_details", strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code, "call %d", i)
		assert.Contains(t, rr.Body.String(), want)
	}

	assert.Equal(t, 1, st.CourierCount())
}

func TestRoutes_PackingPerformance(t *testing.T) {
	router, st := newTestRouter(t)

	q := int64(5)
	st.AddPackingList(storage.PackingList{
		Name:      "PL-1",
		Date:      time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC),
		Packer:    "Alice",
		TotalQty:  &q,
		DocStatus: 1,
	})

	req := httptest.NewRequest(http.MethodGet, "/api/report/packing-performance?month=2&year=2024", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"day_29":0`)
	assert.Contains(t, rr.Body.String(), `"day_3":5`)
	assert.NotContains(t, rr.Body.String(), `"day_30"`)
}

func TestRoutes_Health(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}
