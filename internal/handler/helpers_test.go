package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tidechart/asv-telemetry/internal/handler"
)

// newHTTPHandler wires a Server with the given servicers into the chi router,
// mirroring how main.go wires it in production. Pass nil for servicers a test
// does not exercise.
func newHTTPHandler(readings handler.ReadingServicer, export handler.ExportServicer, gps handler.GPSServicer, paths handler.PathServicer, trips handler.TripServicer) http.Handler {
	return handler.NewServer(readings, export, gps, paths, trips).Routes("")
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// decodeErrorCode extracts error.code from an error response body.
func decodeErrorCode(t *testing.T, body *bytes.Buffer) string {
	t.Helper()
	var resp handler.ErrorResponse
	require.NoError(t, json.Unmarshal(body.Bytes(), &resp))
	return resp.Error.Code
}
