package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_DefaultsFillMissingFields(t *testing.T) {
	path := writeConfig(t, `
client:
  network: staging
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Client.Network != "staging" {
		t.Errorf("network %q, want staging", cfg.Client.Network)
	}
	if cfg.Client.Timeout != 30*time.Second {
		t.Errorf("timeout %v, want 30s", cfg.Client.Timeout)
	}
	if cfg.Client.Retry.MaxRetries != 3 {
		t.Errorf("max_retries %d, want 3", cfg.Client.Retry.MaxRetries)
	}
	if cfg.Client.Retry.BaseDelay != time.Second {
		t.Errorf("base_delay %v, want 1s", cfg.Client.Retry.BaseDelay)
	}
	if cfg.Signer.ChainID != 1 {
		t.Errorf("chain_id %d, want 1", cfg.Signer.ChainID)
	}
	if cfg.Journal.Path != "data/lighter.db" {
		t.Errorf("journal path %q, want data/lighter.db", cfg.Journal.Path)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("logging level %q, want info", cfg.Logging.Level)
	}
}

func TestLoad_ExplicitValuesOverrideDefaults(t *testing.T) {
	path := writeConfig(t, `
client:
  base_url: http://localhost:8080
  timeout: 5s
  retry:
    max_retries: 1
    base_delay: 100ms
journal:
  in_memory: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Client.Timeout != 5*time.Second {
		t.Errorf("timeout %v, want 5s", cfg.Client.Timeout)
	}
	if cfg.Client.Retry.BaseDelay != 100*time.Millisecond {
		t.Errorf("base_delay %v, want 100ms", cfg.Client.Retry.BaseDelay)
	}
	if !cfg.Journal.InMemory {
		t.Error("journal.in_memory should be true")
	}

	url, err := cfg.Client.ResolveBaseURL()
	if err != nil {
		t.Fatalf("ResolveBaseURL returned error: %v", err)
	}
	if url != "http://localhost:8080" {
		t.Errorf("explicit base_url should win, got %q", url)
	}
}

func TestLoad_MissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoad_ValidationRejectsBadValues(t *testing.T) {
	path := writeConfig(t, `
client:
  network: devnet
  timeout: -1s
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "client.network") {
		t.Errorf("error should flag unsupported network, got: %v", err)
	}
	if !strings.Contains(err.Error(), "client.timeout") {
		t.Errorf("error should flag negative timeout, got: %v", err)
	}
}

func TestResolveBaseURL_NetworkPresets(t *testing.T) {
	cases := map[string]string{
		"mainnet": "https://mainnet.zklighter.elliot.ai",
		"staging": "https://staging.zklighter.elliot.ai",
	}
	for network, want := range cases {
		cfg := ClientConfig{Network: network}
		url, err := cfg.ResolveBaseURL()
		if err != nil {
			t.Fatalf("ResolveBaseURL(%s) returned error: %v", network, err)
		}
		if url != want {
			t.Errorf("ResolveBaseURL(%s) = %q, want %q", network, url, want)
		}
	}

	if _, err := (ClientConfig{Network: "devnet"}).ResolveBaseURL(); err == nil {
		t.Error("expected error for unknown network without base_url")
	}
}
