package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "album.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadValidConfig(t *testing.T) {
	path := writeConfig(t, `
album_name: "My lovely dogs"
album_id: "B0zAxqIORGhwx3u"
recipients:
  - "alice@example.com"
  - "bob@example.com"
sender_address: "sender@example.com"
sender_name: "Album Biff"
state_file: "/var/lib/album-biff/seen.json"
sendmail_path: "/usr/bin/msmtp"
`)

	config, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if config.AlbumName != "My lovely dogs" {
		t.Errorf("Expected album name 'My lovely dogs', got '%s'", config.AlbumName)
	}
	if config.AlbumID != "B0zAxqIORGhwx3u" {
		t.Errorf("Expected album ID 'B0zAxqIORGhwx3u', got '%s'", config.AlbumID)
	}
	if len(config.Recipients) != 2 {
		t.Errorf("Expected 2 recipients, got %d", len(config.Recipients))
	}
	if config.SendmailPath != "/usr/bin/msmtp" {
		t.Errorf("Expected sendmail path '/usr/bin/msmtp', got '%s'", config.SendmailPath)
	}
}

func TestLoadAppliesSendmailDefault(t *testing.T) {
	path := writeConfig(t, `
album_name: "Dogs"
album_id: "B0zAxqIORGhwx3u"
recipients:
  - "alice@example.com"
sender_address: "sender@example.com"
sender_name: "Album Biff"
state_file: "./seen.json"
`)

	config, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if config.SendmailPath != "/usr/sbin/sendmail" {
		t.Errorf("Expected default sendmail path, got '%s'", config.SendmailPath)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			"missing album name",
			"album_id: \"x\"\nrecipients: [\"a@example.com\"]\nsender_address: \"s@example.com\"\nstate_file: \"s.json\"\n",
		},
		{
			"missing album id",
			"album_name: \"x\"\nrecipients: [\"a@example.com\"]\nsender_address: \"s@example.com\"\nstate_file: \"s.json\"\n",
		},
		{
			"no recipients",
			"album_name: \"x\"\nalbum_id: \"x\"\nsender_address: \"s@example.com\"\nstate_file: \"s.json\"\n",
		},
		{
			"missing sender",
			"album_name: \"x\"\nalbum_id: \"x\"\nrecipients: [\"a@example.com\"]\nstate_file: \"s.json\"\n",
		},
		{
			"missing state file",
			"album_name: \"x\"\nalbum_id: \"x\"\nrecipients: [\"a@example.com\"]\nsender_address: \"s@example.com\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, err := Load(path); err == nil {
				t.Errorf("Expected validation error for %s", tt.name)
			}
		})
	}
}
