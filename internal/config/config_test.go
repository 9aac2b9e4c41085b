package config

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("LOG_FILE", "")
	t.Setenv("LOG_MAX_SIZE_MB", "")
	t.Setenv("LOG_MAX_BACKUPS", "")

	cfg := FromEnv()

	if cfg.URL != "http://localhost:4498" || cfg.TimeoutSeconds != 5 {
		t.Fatalf("probe defaults wrong: %+v", cfg)
	}
	if cfg.LogFile != "app_health_log.txt" {
		t.Fatalf("log file default wrong: %q", cfg.LogFile)
	}
	if cfg.LogMaxSizeMB != 0 || cfg.LogMaxBackups != 0 {
		t.Fatalf("rotation should be off by default: %+v", cfg)
	}
}

func TestFromEnv_ParsesLogSettings(t *testing.T) {
	t.Setenv("LOG_FILE", "./_testlogs/health.txt")
	t.Setenv("LOG_MAX_SIZE_MB", "10")
	t.Setenv("LOG_MAX_BACKUPS", "3")

	cfg := FromEnv()

	if cfg.LogFile != "./_testlogs/health.txt" || cfg.LogMaxSizeMB != 10 || cfg.LogMaxBackups != 3 {
		t.Fatalf("log settings wrong: %+v", cfg)
	}

	// garbage falls back to defaults
	t.Setenv("LOG_MAX_SIZE_MB", "big")
	t.Setenv("LOG_MAX_BACKUPS", "-1")
	cfg = FromEnv()
	if cfg.LogMaxSizeMB != 0 || cfg.LogMaxBackups != 0 {
		t.Fatalf("want fallbacks, got %+v", cfg)
	}
}

func TestParse_NoFlagsKeepsDefaults(t *testing.T) {
	var out bytes.Buffer
	cfg, err := Parse(FromEnv(), "apphealth", nil, &out)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	req := cfg.ProbeRequest()
	if req.URL != DefaultURL || req.TimeoutSeconds != DefaultTimeoutSeconds {
		t.Fatalf("want defaults, got %+v", req)
	}
	if out.Len() != 0 {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestParse_ShortAndLongFlags(t *testing.T) {
	cases := [][]string{
		{"-u", "http://example.com:8080/health", "-t", "2"},
		{"--url", "http://example.com:8080/health", "--timeout", "2"},
		{"--url=http://example.com:8080/health", "-t2"},
	}
	for _, args := range cases {
		cfg, err := Parse(FromEnv(), "apphealth", args, &bytes.Buffer{})
		if err != nil {
			t.Fatalf("%v: %v", args, err)
		}
		if cfg.URL != "http://example.com:8080/health" || cfg.TimeoutSeconds != 2 {
			t.Fatalf("%v: got %+v", args, cfg)
		}
	}
}

func TestParse_OverridesIndependently(t *testing.T) {
	cfg, err := Parse(FromEnv(), "apphealth", []string{"-t", "9"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.URL != DefaultURL || cfg.TimeoutSeconds != 9 {
		t.Fatalf("got %+v", cfg)
	}
}

func TestParse_NoValidationOfValues(t *testing.T) {
	cfg, err := Parse(FromEnv(), "apphealth", []string{"-u", "not a url", "-t", "-3"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("values should pass through unvalidated: %v", err)
	}
	if cfg.URL != "not a url" || cfg.TimeoutSeconds != -3 {
		t.Fatalf("got %+v", cfg)
	}
}

func TestParse_Errors(t *testing.T) {
	cases := map[string][]string{
		"unknown flag":   {"--verbose"},
		"bad timeout":    {"-t", "soon"},
		"missing value":  {"--url"},
		"positional arg": {"http://example.com"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			if _, err := Parse(FromEnv(), "apphealth", args, &out); err == nil {
				t.Fatalf("want error for %v", args)
			}
			if !strings.Contains(out.String(), "--timeout") {
				t.Fatalf("want usage printed, got %q", out.String())
			}
		})
	}
}

func TestParse_Help(t *testing.T) {
	var out bytes.Buffer
	_, err := Parse(FromEnv(), "apphealth", []string{"-h"}, &out)
	if !errors.Is(err, pflag.ErrHelp) {
		t.Fatalf("want ErrHelp, got %v", err)
	}
	if !strings.Contains(out.String(), "Check the health of a web application.") {
		t.Fatalf("usage missing description: %q", out.String())
	}
}
