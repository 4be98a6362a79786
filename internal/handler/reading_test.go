package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidechart/asv-telemetry/internal/domain"
	"github.com/tidechart/asv-telemetry/internal/handler"
)

// mockReadingServicer is a test double for handler.ReadingServicer.
// Set only the method fields your test needs.
type mockReadingServicer struct {
	listByTrip func(ctx context.Context, tripID uuid.UUID) ([]domain.Reading, error)
	create     func(ctx context.Context, input domain.ReadingSubmission) error
}

func (m *mockReadingServicer) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Reading, error) {
	return m.listByTrip(ctx, tripID)
}
func (m *mockReadingServicer) Create(ctx context.Context, input domain.ReadingSubmission) error {
	return m.create(ctx, input)
}

var _ handler.ReadingServicer = (*mockReadingServicer)(nil)

// mockExportServicer is a test double for handler.ExportServicer.
type mockExportServicer struct {
	exportCSV func(ctx context.Context, tripID uuid.UUID, offsetHours int) ([]byte, error)
}

func (m *mockExportServicer) ExportCSV(ctx context.Context, tripID uuid.UUID, offsetHours int) ([]byte, error) {
	return m.exportCSV(ctx, tripID, offsetHours)
}

var _ handler.ExportServicer = (*mockExportServicer)(nil)

func readingFixture() domain.Reading {
	return domain.Reading{
		Temperature: 18.5,
		Location:    domain.Coordinate{Latitude: 52.25, Longitude: -1.5},
		Depth:       3.2,
		Layer:       domain.LayerSeaBed,
		Time:        time.Date(2025, 6, 1, 12, 30, 45, 0, time.UTC),
	}
}

// ---- GET /api/data/{tripID} ------------------------------------------------

func TestGetData_200(t *testing.T) {
	tripID := uuid.New()
	svc := &mockReadingServicer{
		listByTrip: func(_ context.Context, got uuid.UUID) ([]domain.Reading, error) {
			assert.Equal(t, tripID, got)
			return []domain.Reading{readingFixture()}, nil
		},
	}
	h := newHTTPHandler(svc, nil, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/data/"+tripID.String(), nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got []domain.Reading
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, readingFixture(), got[0])
}

func TestGetData_EmptyArray(t *testing.T) {
	svc := &mockReadingServicer{
		listByTrip: func(_ context.Context, _ uuid.UUID) ([]domain.Reading, error) {
			return nil, nil
		},
	}
	h := newHTTPHandler(svc, nil, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/data/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String(), "no readings must serialize as [], not null")
}

func TestGetData_InvalidTripID_422(t *testing.T) {
	h := newHTTPHandler(&mockReadingServicer{}, nil, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/data/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation_error", decodeErrorCode(t, rec.Body))
}

func TestGetData_DecodeFailure_500(t *testing.T) {
	svc := &mockReadingServicer{
		listByTrip: func(_ context.Context, _ uuid.UUID) ([]domain.Reading, error) {
			return nil, fmt.Errorf("project readings: %w", domain.ErrDecode)
		},
	}
	h := newHTTPHandler(svc, nil, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/data/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal_error", decodeErrorCode(t, rec.Body))
}

// TestGetData_FormatCSV verifies that any case variant of "csv" selects the
// CSV representation and that anything else falls back to JSON.
func TestGetData_FormatCSV(t *testing.T) {
	doc := "temperature,latitude,longitude,depth,layer,trip,time\n"
	export := &mockExportServicer{
		exportCSV: func(_ context.Context, _ uuid.UUID, offsetHours int) ([]byte, error) {
			assert.Equal(t, 0, offsetHours)
			return []byte(doc), nil
		},
	}
	jsonSvc := &mockReadingServicer{
		listByTrip: func(_ context.Context, _ uuid.UUID) ([]domain.Reading, error) {
			return nil, nil
		},
	}
	h := newHTTPHandler(jsonSvc, export, nil, nil, nil)

	for _, format := range []string{"csv", "CSV", "CsV"} {
		req := httptest.NewRequest(http.MethodGet, "/api/data/"+uuid.NewString()+"?format="+format, nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"), "format=%s", format)
		assert.Equal(t, doc, rec.Body.String())
	}

	// Unrecognized format falls back to JSON.
	req := httptest.NewRequest(http.MethodGet, "/api/data/"+uuid.NewString()+"?format=xml", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestGetData_CSVOffsetPassed(t *testing.T) {
	export := &mockExportServicer{
		exportCSV: func(_ context.Context, _ uuid.UUID, offsetHours int) ([]byte, error) {
			assert.Equal(t, -5, offsetHours)
			return []byte("temperature,latitude,longitude,depth,layer,trip,time\n"), nil
		},
	}
	h := newHTTPHandler(nil, export, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/data/"+uuid.NewString()+"?format=csv&offset=-5", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGetData_CSVInvalidOffset_422(t *testing.T) {
	h := newHTTPHandler(nil, &mockExportServicer{}, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/data/"+uuid.NewString()+"?format=csv&offset=abc", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation_error", decodeErrorCode(t, rec.Body))
}

// ---- POST /api/data --------------------------------------------------------

func TestPostData_204(t *testing.T) {
	tripID := uuid.New()
	var got domain.ReadingSubmission
	svc := &mockReadingServicer{
		create: func(_ context.Context, input domain.ReadingSubmission) error {
			got = input
			return nil
		},
	}
	h := newHTTPHandler(svc, nil, nil, nil, nil)

	body := jsonBody(t, map[string]any{
		"temperature": 18.5,
		"location":    map[string]float64{"latitude": 52.25, "longitude": -1.5},
		"depth":       3.2,
		"layer":       "sea bed",
		"trip_id":     tripID,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/data", body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, tripID, got.TripID)
	assert.Equal(t, "sea bed", got.Layer)
	assert.Equal(t, domain.Coordinate{Latitude: 52.25, Longitude: -1.5}, got.Location)
}

// TestPostData_CoordinateAliases verifies the lat/lng input aliases are
// accepted all the way through the HTTP layer.
func TestPostData_CoordinateAliases(t *testing.T) {
	svc := &mockReadingServicer{
		create: func(_ context.Context, input domain.ReadingSubmission) error {
			assert.Equal(t, domain.Coordinate{Latitude: 52.25, Longitude: -1.5}, input.Location)
			return nil
		},
	}
	h := newHTTPHandler(svc, nil, nil, nil, nil)

	body := jsonBody(t, map[string]any{
		"temperature": 18.5,
		"location":    map[string]float64{"lat": 52.25, "lng": -1.5},
		"depth":       3.2,
		"layer":       "surface",
		"trip_id":     uuid.New(),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/data", body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestPostData_MissingField_422(t *testing.T) {
	svc := &mockReadingServicer{
		create: func(_ context.Context, _ domain.ReadingSubmission) error {
			t.Fatal("create must not be called for an incomplete body")
			return nil
		},
	}
	h := newHTTPHandler(svc, nil, nil, nil, nil)

	body := jsonBody(t, map[string]any{
		"temperature": 18.5,
		"depth":       3.2,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/data", body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation_error", decodeErrorCode(t, rec.Body))
}

func TestPostData_UnknownLayer_422(t *testing.T) {
	svc := &mockReadingServicer{
		create: func(_ context.Context, _ domain.ReadingSubmission) error {
			return fmt.Errorf("service.ReadingService.Create: %w: unknown layer \"abyss\"", domain.ErrValidation)
		},
	}
	h := newHTTPHandler(svc, nil, nil, nil, nil)

	body := jsonBody(t, map[string]any{
		"temperature": 18.5,
		"location":    map[string]float64{"latitude": 52.25, "longitude": -1.5},
		"depth":       3.2,
		"layer":       "abyss",
		"trip_id":     uuid.New(),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/data", body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation_error", decodeErrorCode(t, rec.Body))
}

func TestPostData_UnknownTrip_422(t *testing.T) {
	svc := &mockReadingServicer{
		create: func(_ context.Context, _ domain.ReadingSubmission) error {
			return fmt.Errorf("repo.ReadingRepo.Create: %w", domain.ErrInvalidReference)
		},
	}
	h := newHTTPHandler(svc, nil, nil, nil, nil)

	body := jsonBody(t, map[string]any{
		"temperature": 18.5,
		"location":    map[string]float64{"latitude": 52.25, "longitude": -1.5},
		"depth":       3.2,
		"layer":       "middle",
		"trip_id":     uuid.New(),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/data", body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "invalid_reference", decodeErrorCode(t, rec.Body))
}
