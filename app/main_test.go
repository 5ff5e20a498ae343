package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegration(t *testing.T) {
	t.Setenv("THEMER_SYSTEM_THEME", "dark")
	t.Setenv("GTK_THEME", "")

	cmd := &ServerCmd{}
	cmd.DB = filepath.Join(t.TempDir(), "test.db")
	cmd.System.Sources = []string{"env", "reported"}
	cmd.System.Timeout = time.Second
	cmd.Server.Address = "127.0.0.1:18484" // use non-standard port to avoid conflicts
	cmd.Server.ReadTimeout = 5 * time.Second

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- cmd.run(ctx)
	}()

	waitForServer(t, "http://127.0.0.1:18484/ping")

	client := &http.Client{Timeout: 5 * time.Second}
	getState := func(t *testing.T) map[string]any {
		t.Helper()
		resp, err := client.Get("http://127.0.0.1:18484/api/theme")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var state map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&state))
		return state
	}

	t.Run("starts with system preference persisted", func(t *testing.T) {
		state := getState(t)
		assert.Equal(t, "dark", state["theme"])
		assert.Equal(t, true, state["overridden"])
	})

	t.Run("toggle switches theme", func(t *testing.T) {
		resp, err := client.Post("http://127.0.0.1:18484/api/theme/toggle", "application/json", http.NoBody)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "light", getState(t)["theme"])
	})

	t.Run("set theme explicitly", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodPut, "http://127.0.0.1:18484/api/theme", bytes.NewBufferString(`{"theme":"dark"}`))
		require.NoError(t, err)
		resp, err := client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "dark", getState(t)["theme"])
	})

	t.Run("system report is accepted with reported source", func(t *testing.T) {
		resp, err := client.Post("http://127.0.0.1:18484/api/system", "application/json", bytes.NewBufferString(`{"theme":"light"}`))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		// env source wins over reported values, override is kept
		assert.Equal(t, "dark", getState(t)["theme"])
	})

	t.Run("html page renders current theme", func(t *testing.T) {
		resp, err := client.Get("http://127.0.0.1:18484/")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var buf bytes.Buffer
		_, err = buf.ReadFrom(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), `data-theme="dark"`)
	})

	cancel()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down in time")
	}
}

func TestIntegration_WithBaseURL(t *testing.T) {
	cmd := &ServerCmd{}
	cmd.DB = filepath.Join(t.TempDir(), "test.db")
	cmd.Server.Address = "127.0.0.1:18488"
	cmd.Server.ReadTimeout = 5 * time.Second
	cmd.Server.BaseURL = "/themer/"

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- cmd.run(ctx)
	}()

	waitForServer(t, "http://127.0.0.1:18488/themer/ping")

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get("http://127.0.0.1:18488/themer/api/theme")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = client.Get("http://127.0.0.1:18488/api/theme")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	cancel()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down in time")
	}
}

func TestRun_InvalidDB(t *testing.T) {
	cmd := &ServerCmd{}
	cmd.DB = "/nonexistent/path/to/db.db"
	cmd.Server.Address = "127.0.0.1:18486"

	err := cmd.run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize store")
}

func TestRun_InvalidBaseURL(t *testing.T) {
	cmd := &ServerCmd{}
	cmd.DB = filepath.Join(t.TempDir(), "test.db")
	cmd.Server.BaseURL = "themer"

	err := cmd.run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid base URL")
}

func TestRun_InvalidSource(t *testing.T) {
	cmd := &ServerCmd{}
	cmd.DB = filepath.Join(t.TempDir(), "test.db")
	cmd.System.Sources = []string{"env", "bluetooth"}

	err := cmd.run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid system source")
}

func waitForServer(t *testing.T, url string) {
	t.Helper()
	client := &http.Client{Timeout: 100 * time.Millisecond}
	require.Eventually(t, func() bool {
		resp, err := client.Get(url)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 50*time.Millisecond, "server did not start")
}

func TestSetupLogs(t *testing.T) {
	t.Run("default mode", func(t *testing.T) {
		w := setupLogs(false)
		assert.NotNil(t, w)
	})

	t.Run("debug mode", func(t *testing.T) {
		w := setupLogs(true)
		assert.NotNil(t, w)
	})
}

func TestSignals(t *testing.T) {
	_, cancel := context.WithCancel(context.Background())
	defer cancel()

	// verify signals() doesn't panic
	require.NotPanics(t, func() {
		signals(cancel)
	})
}

func TestValidateBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"empty", "", "", false},
		{"valid", "/themer", "/themer", false},
		{"valid nested", "/app/themer", "/app/themer", false},
		{"strips trailing slash", "/themer/", "/themer", false},
		{"root only", "/", "", false},
		{"missing leading slash", "themer", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validateBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
