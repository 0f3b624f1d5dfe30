package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListGenerationsWithoutDatabase(t *testing.T) {
	router := setupTestRouter()

	w := getJSON(t, router, "/api/v1/generations")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "history is disabled")
}

func TestGetGenerationWithoutDatabase(t *testing.T) {
	router := setupTestRouter()

	w := getJSON(t, router, "/api/v1/generations/some-uuid")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "history is disabled")
}
