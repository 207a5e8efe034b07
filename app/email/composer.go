// Package email composes the notification message and hands it to a local
// sendmail-style transport.
//
// The HTML body is carried quoted-printable: generated HTML easily exceeds
// the RFC 5322 line limit of 998 characters (recommended 78), and
// quoted-printable bounds every output line by construction. The plaintext
// alternative is short templated ASCII and travels unencoded.
package email

import (
	"fmt"
	"net/mail"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

// Params carries everything needed to build one notification message.
type Params struct {
	AlbumName     string
	AlbumURL      string
	HTML          string
	Recipients    []string
	SenderAddress string
	SenderName    string
}

type Composer struct{}

func NewComposer() *Composer {
	return &Composer{}
}

// Run builds the full MIME message: a multipart/alternative pair of the
// plaintext fallback and the quoted-printable HTML body, addressed to every
// recipient with a blind copy back to the sender as an audit trail.
func (c *Composer) Run(p Params) (*gomail.Message, error) {
	if _, err := mail.ParseAddress(p.SenderAddress); err != nil {
		return nil, fmt.Errorf("invalid sender address %q: %w", p.SenderAddress, err)
	}
	if len(p.Recipients) == 0 {
		return nil, fmt.Errorf("no recipients configured")
	}
	for _, recipient := range p.Recipients {
		if _, err := mail.ParseAddress(recipient); err != nil {
			return nil, fmt.Errorf("invalid recipient address %q: %w", recipient, err)
		}
	}

	plaintext := fmt.Sprintf("New %s photos are available at %s", p.AlbumName, p.AlbumURL)
	subject := fmt.Sprintf("New %s photos", p.AlbumName)

	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.SenderAddress, p.SenderName)
	m.SetHeader("To", p.Recipients...)
	m.SetHeader("Bcc", p.SenderAddress)
	m.SetHeader("Subject", subject)
	m.SetHeader("Message-Id", fmt.Sprintf("<%s@album-biff>", uuid.NewString()))

	m.SetBody("text/plain", plaintext, gomail.SetPartEncoding(gomail.Unencoded))
	// Last alternative part is the preferred one.
	m.AddAlternative("text/html", p.HTML, gomail.SetPartEncoding(gomail.QuotedPrintable))

	return m, nil
}
