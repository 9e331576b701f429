package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		set   bool
		want  int
	}{
		{"unset uses default", "", false, 42},
		{"valid integer", "100", true, 100},
		{"negative", "-10", true, -10},
		{"zero", "0", true, 0},
		{"not a number", "abc", true, 42},
		{"float", "42.5", true, 42},
		{"empty", "", true, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv("TEST_INT_VAR", tt.value)
			}
			assert.Equal(t, tt.want, getEnvAsInt("TEST_INT_VAR", 42))
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		set   bool
		want  time.Duration
	}{
		{"unset uses default", "", false, time.Minute},
		{"seconds", "30s", true, 30 * time.Second},
		{"hours", "2h", true, 2 * time.Hour},
		{"complex", "1h30m", true, 90 * time.Minute},
		{"milliseconds", "250ms", true, 250 * time.Millisecond},
		{"plain number", "30", true, time.Minute},
		{"garbage", "soon", true, time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv("TEST_DURATION_VAR", tt.value)
			}
			assert.Equal(t, tt.want, getEnvAsDuration("TEST_DURATION_VAR", time.Minute))
		})
	}
}
