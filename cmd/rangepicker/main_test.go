package main

import (
	"log/slog"
	"testing"
)

func TestResolveSecretKey(t *testing.T) {
	t.Parallel()

	rejected := []string{
		"",
		"   ",
		"change_me_in_production",
		"replace_with_at_least_32_random_characters",
		"too-short-secret",
	}
	for _, raw := range rejected {
		if _, err := resolveSecretKey(raw); err == nil {
			t.Fatalf("expected error for SECRET_KEY %q", raw)
		}
	}

	valid := "0123456789abcdef0123456789abcdef"
	secret, err := resolveSecretKey(" " + valid + " ")
	if err != nil {
		t.Fatalf("expected valid secret, got error: %v", err)
	}
	if secret != valid {
		t.Fatalf("expected %q, got %q", valid, secret)
	}
}

func TestResolvePort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "", want: "8080"},
		{raw: "9090", want: "9090"},
		{raw: "0", wantErr: true},
		{raw: "70000", wantErr: true},
		{raw: "not-a-number", wantErr: true},
	}

	for _, test := range tests {
		port, err := resolvePort(test.raw)
		if test.wantErr {
			if err == nil {
				t.Fatalf("expected invalid port %q to fail", test.raw)
			}
			continue
		}
		if err != nil {
			t.Fatalf("resolvePort(%q) unexpected error: %v", test.raw, err)
		}
		if port != test.want {
			t.Fatalf("expected port %q, got %q", test.want, port)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	if got := parseLogLevel("debug"); got != slog.LevelDebug {
		t.Fatalf("expected debug level, got %v", got)
	}
	if got := parseLogLevel("WARN"); got != slog.LevelWarn {
		t.Fatalf("expected warn level, got %v", got)
	}
	if got := parseLogLevel("loud"); got != slog.LevelInfo {
		t.Fatalf("expected info fallback, got %v", got)
	}
}
