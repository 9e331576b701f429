package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	HandleHealthz().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	t.Run("Storage Reachable - Success", func(t *testing.T) {
		storage := &MockPinger{}
		storage.On("Ping", mock.Anything).Return(nil)

		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
		w := httptest.NewRecorder()

		HandleReadyz(storage).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
		storage.AssertExpectations(t)
	})

	t.Run("Storage Unreachable", func(t *testing.T) {
		storage := &MockPinger{}
		storage.On("Ping", mock.Anything).Return(assert.AnError)

		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
		w := httptest.NewRecorder()

		HandleReadyz(storage).ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"unavailable"`)
		assert.NotContains(t, w.Body.String(), assert.AnError.Error())
		storage.AssertExpectations(t)
	})
}

func TestHandleVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    string
	}{
		{"configured version", "1.4.0", "1.4.0"},
		{"empty falls back to dev", "", "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			HandleVersion(tt.version).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/version", nil))

			require.Equal(t, http.StatusOK, w.Code)
			var info VersionInfo
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
			assert.Equal(t, tt.want, info.Version)
			assert.Equal(t, runtime.Version(), info.GoVersion)
			assert.Equal(t, GitCommit, info.GitCommit)
		})
	}
}
