// Package clip wraps the system clipboard behind a small interface-friendly
// type so callers can swap it out in tests.
package clip

import "github.com/atotto/clipboard"

type Clipboard struct{}

func New() *Clipboard {
	return &Clipboard{}
}

func (*Clipboard) ReadAll() (string, error) {
	return clipboard.ReadAll()
}

func (*Clipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
