package config

import (
	"github.com/lysyi3m/album-biff/app/album"
)

// Config describes one monitored shared album: where it lives, who gets
// notified, and where the tool keeps its state.
type Config struct {
	AlbumName     string        `yaml:"album_name"`
	AlbumID       album.AlbumID `yaml:"album_id"`
	Recipients    []string      `yaml:"recipients"`
	SenderAddress string        `yaml:"sender_address"`
	SenderName    string        `yaml:"sender_name"`
	StateFile     string        `yaml:"state_file"`
	SendmailPath  string        `yaml:"sendmail_path"`
}
