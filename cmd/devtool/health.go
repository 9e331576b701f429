package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/osse101/Ascendant_Go/internal/handler"
)

const (
	defaultBaseURL      = "http://localhost:8080"
	healthTimeout       = 5 * time.Second
	healthSlowThreshold = time.Second
)

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Check liveness, readiness and version of a running server"
}

func (c *HealthCheckCommand) ArgsUsage() string {
	return "[base-url]"
}

func (c *HealthCheckCommand) Run(args []string) error {
	base := defaultBaseURL
	if len(args) > 0 {
		base = strings.TrimRight(args[0], "/")
	}

	PrintHeader(fmt.Sprintf("Health Check (%s)", base))

	for _, path := range []string{"/healthz", "/readyz"} {
		start := time.Now()
		var resp handler.HealthResponse
		if err := getJSON(base+path, &resp); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		duration := time.Since(start)

		if duration > healthSlowThreshold {
			PrintWarning("%s %s (slow response: %v)", path, resp.Status, duration)
		} else {
			PrintSuccess("%s %s (%v)", path, resp.Status, duration)
		}
	}

	var version handler.VersionInfo
	if err := getJSON(base+"/version", &version); err != nil {
		return fmt.Errorf("/version: %w", err)
	}
	PrintInfo("Version %s (commit %s, %s)", version.Version, version.GitCommit, version.GoVersion)
	return nil
}

func getJSON(url string, target interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(target)
}
