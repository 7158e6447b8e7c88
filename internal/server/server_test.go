package server_test

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/JaimeStill/diagnostics-lab/internal/config"
	"github.com/JaimeStill/diagnostics-lab/internal/lifecycle"
	"github.com/JaimeStill/diagnostics-lab/internal/server"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

func testConfig() *config.ServerConfig {
	return &config.ServerConfig{
		Host:            "127.0.0.1",
		Port:            0,
		ReadTimeout:     "5s",
		WriteTimeout:    "5s",
		ShutdownTimeout: "5s",
	}
}

func TestServer_StartAndShutdown(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	lc := lifecycle.New()
	srv := server.New(testConfig(), handler, testLogger())

	if err := srv.Start(lc); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	resp, err := http.Get("http://" + srv.Addr() + "/")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if string(body) != "OK" {
		t.Errorf("body = %q, want %q", string(body), "OK")
	}

	if err := lc.Shutdown(5 * time.Second); err != nil {
		t.Fatalf("Shutdown() failed: %v", err)
	}

	if _, err := http.Get("http://" + srv.Addr() + "/"); err == nil {
		t.Error("server still accepting connections after shutdown")
	}
}

func TestServer_StartBindError(t *testing.T) {
	lc := lifecycle.New()
	defer lc.Shutdown(time.Second)

	first := server.New(testConfig(), http.NotFoundHandler(), testLogger())
	if err := first.Start(lc); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	cfg := testConfig()
	_, port, _ := splitPort(first.Addr())
	cfg.Port = port

	second := server.New(cfg, http.NotFoundHandler(), testLogger())
	if err := second.Start(lc); err == nil {
		t.Error("Start() succeeded on a bound port, want error")
	}
}
