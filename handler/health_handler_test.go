// handler/health_handler_test.go
package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	t.Run("healthy database", func(t *testing.T) {
		db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()

		dbMock.ExpectPing()

		req := httptest.NewRequest("GET", "/healthz", nil)
		rr := httptest.NewRecorder()
		NewHealthHandler(db).HealthCheck(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"ok":true}`, rr.Body.String())
	})

	t.Run("unreachable database", func(t *testing.T) {
		db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()

		dbMock.ExpectPing().WillReturnError(errors.New("connection refused"))

		req := httptest.NewRequest("GET", "/healthz", nil)
		rr := httptest.NewRecorder()
		NewHealthHandler(db).HealthCheck(rr, req)

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.JSONEq(t, `{"ok":false}`, rr.Body.String())
	})
}
