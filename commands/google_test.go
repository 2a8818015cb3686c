package commands

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sheetbridge/sheetbridge/bridge"
)

func TestTokenFile(t *testing.T) {
	cases := []struct {
		scope    string
		expected string
	}{
		{bridge.SHEETS, "credentials.sheets"},
		{bridge.SHEETS_READONLY, "credentials.sheets"},
		{bridge.DRIVE_READONLY, "credentials.drive"},
		{"https://www.googleapis.com/auth/other", "credentials.tokens"},
	}

	for _, c := range cases {
		tokens := tokenFile("/etc/sheetbridge/credentials.json", c.scope)
		if filepath.Base(tokens) != c.expected {
			t.Errorf("Incorrect token file for scope %s\n   expected: %s\n   got:      %s\n", c.scope, c.expected, filepath.Base(tokens))
		}
	}
}

func TestAuthorizeWithServiceAccount(t *testing.T) {
	credentials := filepath.Join(t.TempDir(), "credentials.json")
	key := `{"type": "service_account", "project_id": "test", "private_key_id": "x"}`

	if err := os.WriteFile(credentials, []byte(key), 0600); err != nil {
		t.Fatalf("Unexpected error creating credentials file (%v)", err)
	}

	opts, err := authorize(context.Background(), credentials, bridge.SHEETS)
	if err != nil {
		t.Fatalf("Unexpected error returned from authorize (%v)", err)
	}

	if len(opts) != 2 {
		t.Errorf("Incorrect client options - expected 2, got %v", len(opts))
	}
}

func TestAuthorizeWithMissingCredentials(t *testing.T) {
	if _, err := authorize(context.Background(), filepath.Join(t.TempDir(), "missing.json"), bridge.SHEETS); err == nil {
		t.Errorf("Expected error return for missing credentials file, got %v", err)
	}
}

func TestAuthorizeWithInvalidCredentials(t *testing.T) {
	credentials := filepath.Join(t.TempDir(), "credentials.json")

	if err := os.WriteFile(credentials, []byte("not json"), 0600); err != nil {
		t.Fatalf("Unexpected error creating credentials file (%v)", err)
	}

	_, err := authorize(context.Background(), credentials, bridge.SHEETS)
	if err == nil {
		t.Fatalf("Expected error return for invalid credentials file, got %v", err)
	}

	if strings.Contains(err.Error(), "authorization code") {
		t.Errorf("Invalid credentials should fail before the console flow (%v)", err)
	}
}
