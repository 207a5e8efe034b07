package email

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"gopkg.in/gomail.v2"
)

// Sender dispatches a fully composed message. Abstracted so tests can
// substitute a fake transport.
type Sender interface {
	Send(ctx context.Context, m *gomail.Message) error
}

// SendmailSender pipes the serialized message into a local sendmail-style
// program. Recipients are taken from the message headers (-t); Bcc handling
// and actual delivery are the transport's problem.
type SendmailSender struct {
	path string
}

func NewSendmailSender(path string) *SendmailSender {
	return &SendmailSender{path: path}
}

func (s *SendmailSender) Send(ctx context.Context, m *gomail.Message) error {
	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		return fmt.Errorf("failed to serialize message: %w", err)
	}

	cmd := exec.CommandContext(ctx, s.path, "-t", "-oi")
	cmd.Stdin = &buf

	output, err := cmd.CombinedOutput()
	if err != nil {
		if out := strings.TrimSpace(string(output)); out != "" {
			return fmt.Errorf("%s failed: %w: %s", s.path, err, out)
		}
		return fmt.Errorf("%s failed: %w", s.path, err)
	}
	return nil
}
