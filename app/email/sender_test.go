package email

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeSendmail writes a shell script standing in for the mail transport.
func fakeSendmail(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sendmail")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSendPipesMessageToTransport(t *testing.T) {
	captured := filepath.Join(t.TempDir(), "captured.eml")
	path := fakeSendmail(t, `cat > "`+captured+`"`)

	m, err := NewComposer().Run(testParams())
	if err != nil {
		t.Fatal(err)
	}

	sender := NewSendmailSender(path)
	if err := sender.Send(context.Background(), m); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(captured)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Subject: New Dogs photos") {
		t.Error("Expected the serialized message on the transport's stdin")
	}
}

func TestSendFailsOnTransportError(t *testing.T) {
	path := fakeSendmail(t, "echo 'queue unavailable' >&2; exit 1")

	m, err := NewComposer().Run(testParams())
	if err != nil {
		t.Fatal(err)
	}

	sender := NewSendmailSender(path)
	err = sender.Send(context.Background(), m)
	if err == nil {
		t.Fatal("Expected error for failing transport")
	}
	if !strings.Contains(err.Error(), "queue unavailable") {
		t.Errorf("Expected transport output in error, got: %v", err)
	}
}

func TestSendFailsOnMissingTransport(t *testing.T) {
	m, err := NewComposer().Run(testParams())
	if err != nil {
		t.Fatal(err)
	}

	sender := NewSendmailSender(filepath.Join(t.TempDir(), "no-such-binary"))
	if err := sender.Send(context.Background(), m); err == nil {
		t.Error("Expected error for missing transport binary")
	}
}
