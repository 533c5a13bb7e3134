package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMeta(t *testing.T) {
	tests := []struct {
		total int64
		limit int
		pages int
	}{
		{0, 20, 0},
		{20, 20, 1},
		{21, 20, 2},
		{5, 0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.pages, NewMeta(1, tt.limit, tt.total).TotalPages, "total=%d limit=%d", tt.total, tt.limit)
	}
}

func TestStatusErrorFallsBackToStatusText(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(rec, "")

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "Not Found", body.Message)

	rec = httptest.NewRecorder()
	Conflict(rec, "municipality already exists")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "municipality already exists", body.Message)
}
