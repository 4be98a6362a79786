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

// mockTripServicer is a test double for handler.TripServicer.
type mockTripServicer struct {
	list   func(ctx context.Context) ([]domain.Trip, error)
	create func(ctx context.Context, pathID uuid.UUID) (uuid.UUID, error)
}

func (m *mockTripServicer) List(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}
func (m *mockTripServicer) Create(ctx context.Context, pathID uuid.UUID) (uuid.UUID, error) {
	return m.create(ctx, pathID)
}

var _ handler.TripServicer = (*mockTripServicer)(nil)

// ---- GET /api/trips --------------------------------------------------------

func TestGetTrips_200(t *testing.T) {
	trip := domain.Trip{
		ID:     uuid.New(),
		Time:   time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
		PathID: uuid.New(),
	}
	svc := &mockTripServicer{
		list: func(_ context.Context) ([]domain.Trip, error) {
			return []domain.Trip{trip}, nil
		},
	}
	h := newHTTPHandler(nil, nil, nil, nil, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/trips", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []domain.Trip
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, trip.ID, got[0].ID)
	assert.Equal(t, trip.PathID, got[0].PathID)
	assert.True(t, got[0].Time.Equal(trip.Time))
}

func TestGetTrips_EmptyArray(t *testing.T) {
	svc := &mockTripServicer{
		list: func(_ context.Context) ([]domain.Trip, error) { return nil, nil },
	}
	h := newHTTPHandler(nil, nil, nil, nil, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/trips", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

// ---- POST /api/trips -------------------------------------------------------

func TestPostTrips_201(t *testing.T) {
	pathID := uuid.New()
	tripID := uuid.New()
	svc := &mockTripServicer{
		create: func(_ context.Context, got uuid.UUID) (uuid.UUID, error) {
			assert.Equal(t, pathID, got)
			return tripID, nil
		},
	}
	h := newHTTPHandler(nil, nil, nil, nil, svc)

	body := jsonBody(t, map[string]any{"path_id": pathID})
	req := httptest.NewRequest(http.MethodPost, "/api/trips", body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":"`+tripID.String()+`"}`, rec.Body.String())
}

func TestPostTrips_MissingPathID_422(t *testing.T) {
	svc := &mockTripServicer{
		create: func(_ context.Context, _ uuid.UUID) (uuid.UUID, error) {
			t.Fatal("create must not be called for an incomplete body")
			return uuid.Nil, nil
		},
	}
	h := newHTTPHandler(nil, nil, nil, nil, svc)

	body := jsonBody(t, map[string]any{})
	req := httptest.NewRequest(http.MethodPost, "/api/trips", body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation_error", decodeErrorCode(t, rec.Body))
}

// TestPostTrips_UnknownPath_422 verifies a foreign key violation surfaces as
// a client error, not a 500.
func TestPostTrips_UnknownPath_422(t *testing.T) {
	svc := &mockTripServicer{
		create: func(_ context.Context, _ uuid.UUID) (uuid.UUID, error) {
			return uuid.Nil, fmt.Errorf("repo.TripRepo.Create: %w", domain.ErrInvalidReference)
		},
	}
	h := newHTTPHandler(nil, nil, nil, nil, svc)

	body := jsonBody(t, map[string]any{"path_id": uuid.New()})
	req := httptest.NewRequest(http.MethodPost, "/api/trips", body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "invalid_reference", decodeErrorCode(t, rec.Body))
}
