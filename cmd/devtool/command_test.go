package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	r := newDefaultRegistry()

	cmd, ok := r.Get("doctor")
	require.True(t, ok)
	assert.Equal(t, "doctor", cmd.Name())

	_, ok = r.Get("deploy")
	assert.False(t, ok)

	names := func(section string) []string {
		var out []string
		for _, c := range r.List(section) {
			out = append(out, c.Name())
		}
		return out
	}
	assert.Equal(t, []string{"create-db", "migrate", "wait-for-db"}, names(SectionStorage))
	assert.Equal(t, []string{"doctor", "health-check"}, names(SectionDiagnostics))
	assert.Len(t, r.List(""), 5)
}

func TestRegistry_Dispatch(t *testing.T) {
	r := newDefaultRegistry()

	err := r.Dispatch([]string{"deploy"})
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, err.Error(), "deploy")

	assert.ErrorIs(t, r.Dispatch(nil), ErrUnknownCommand)

	err = r.Dispatch([]string{"migrate", "sideways"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnknownCommand)
}

func TestRegistry_PrintHelp(t *testing.T) {
	var buf bytes.Buffer
	newDefaultRegistry().PrintHelp(&buf)
	out := buf.String()

	assert.Contains(t, out, "ascendant engine")
	assert.Contains(t, out, "migrate up | create <postgres|sqlite> <name>")
	assert.Contains(t, out, "health-check [base-url]")
	assert.Less(t, strings.Index(out, SectionStorage+":"), strings.Index(out, SectionDiagnostics+":"))
}

func TestCheckHostile(t *testing.T) {
	assert.NoError(t, checkHostile("go", "run", "-dir", "internal/database/migrations/sqlite", "add_index"))

	for _, bad := range []string{"a|b", "$(whoami)", "x && y", "out > file", "line\nbreak", "a;b"} {
		assert.Error(t, checkHostile(bad), bad)
	}
}

func TestMigrateCommand_Usage(t *testing.T) {
	c := &MigrateCommand{}
	assert.Error(t, c.Run(nil))
	assert.Error(t, c.Run([]string{"sideways"}))
	assert.Error(t, c.Run([]string{"create", "mysql", "name"}))
	assert.Error(t, c.Run([]string{"create", "sqlite"}))
}

func TestHealthCheckCommand(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ready"}`))
	})
	mux.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"version":"test","go_version":"go1.24"}`))
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	assert.NoError(t, (&HealthCheckCommand{}).Run([]string{ts.URL + "/"}))

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer down.Close()

	assert.Error(t, (&HealthCheckCommand{}).Run([]string{down.URL}))
}
