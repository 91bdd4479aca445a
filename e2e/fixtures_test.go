//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FakeProvider serves the WeatherAPI current.json endpoint
type FakeProvider struct {
	server *httptest.Server

	mu       sync.Mutex
	requests map[string]int
}

// URL returns the base URL to point the app at
func (p *FakeProvider) URL() string {
	return p.server.URL
}

// Close shuts the server down
func (p *FakeProvider) Close() {
	p.server.Close()
}

// Requests returns how many lookups arrived for city (case-insensitive)
func (p *FakeProvider) Requests(city string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.requests[strings.ToLower(city)]
}

func (p *FakeProvider) serve(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/current.json" {
		http.NotFound(w, r)
		return
	}

	q := r.URL.Query().Get("q")
	p.mu.Lock()
	p.requests[strings.ToLower(q)]++
	p.mu.Unlock()

	if r.URL.Query().Get("key") != "e2e-key" {
		writeJSON(w, http.StatusUnauthorized, map[string]any{
			"error": map[string]any{"code": 2006, "message": "API key is invalid."},
		})
		return
	}

	switch strings.ToLower(q) {
	case "xyzq":
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error": map[string]any{"code": 1006, "message": "Invalid city name"},
		})
	case "outage":
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("bad gateway"))
	default:
		writeJSON(w, http.StatusOK, map[string]any{
			"location": map[string]any{
				"name":      q,
				"region":    "Test Region",
				"country":   "Testland",
				"tz_id":     "Etc/UTC",
				"localtime": "2024-05-01 14:30",
			},
			"current": map[string]any{
				"temp_c":   18.5,
				"humidity": 71,
				"condition": map[string]any{
					"text": "Light rain",
					"icon": "//cdn.weatherapi.com/weather/64x64/day/296.png",
					"code": 1183,
				},
			},
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// CreateTestWorkspace creates an isolated home directory and provider for one run
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir

	p := &FakeProvider{requests: make(map[string]int)}
	p.server = httptest.NewServer(http.HandlerFunc(p.serve))
	tf.provider = p

	return tmpDir, nil
}

// WriteConfig writes a config.toml into the workspace and returns its path
func (tf *TUITestFramework) WriteConfig(content string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	path := filepath.Join(tf.workspace, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}
	return path, nil
}
