package utils

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHandleServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"location", ErrLocationNotFound, http.StatusNotFound,
			`{"error":{"Not Found":"Sorry, we don't have a cafe at that location."}}`},
		{"id", fmt.Errorf("cafe 7: %w", ErrCafeNotFound), http.StatusNotFound,
			`{"error":{"Not Found":"Sorry a cafe with that id was not found in the database"}}`},
		{"empty", ErrEmptyCollection, http.StatusNotFound,
			`{"error":{"Not Found":"Sorry, there are no cafes in the database."}}`},
		{"forbidden", ErrForbidden, http.StatusForbidden,
			`{"error":{"Forbidden":"You are not authorized to access this route"}}`},
		{"duplicate", ErrDuplicateCafe, http.StatusConflict,
			`{"error":{"Conflict":"Sorry, a cafe with that name already exists."}}`},
		{"invalid", ErrInvalidCafe, http.StatusBadRequest,
			`{"error":{"Bad Request":"Sorry, name, map_url, img_url, location and seats are required."}}`},
		{"database", fmt.Errorf("%w: disk I/O", ErrDatabaseError), http.StatusInternalServerError,
			`{"error":{"Internal Server Error":"Something went wrong, please try again later."}}`},
		{"unknown", errors.New("boom"), http.StatusInternalServerError,
			`{"error":{"Internal Server Error":"Something went wrong, please try again later."}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			HandleServiceError(c, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestRespondSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	RespondSuccess(c, "Successfully updated the price")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"response":{"success":"Successfully updated the price"}}`, rec.Body.String())
}
