package scheduler

import (
	"os"
	"strings"
)

// MarkerStore persists the date of the last triggered run. It is the sole
// source of "already ran today" truth.
type MarkerStore interface {
	Read() (string, error)
	Write(date string) error
}

// FileMarker keeps the marker as a single YYYY-MM-DD line in a plain
// file.
type FileMarker struct {
	Path string
}

func (m FileMarker) Read() (string, error) {
	data, err := os.ReadFile(m.Path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (m FileMarker) Write(date string) error {
	return os.WriteFile(m.Path, []byte(date), 0644)
}
