package server

import (
	"github.com/matkrin/colord/internal/token"
)

// Document is an open document's last full text snapshot. Sync is
// full-document, every change replaces Text entirely.
type Document struct {
	Text       string
	LanguageID string
	Version    int
}

type State struct {
	Documents         map[string]Document
	Colors            *token.Cache
	Settings          *SettingsCache
	ShutdownRequested bool
}

func NewState() State {
	return State{
		Documents: make(map[string]Document),
		Colors:    token.NewCache(),
		Settings:  &SettingsCache{},
	}
}

func (s *State) OpenDocument(uri, languageID string, version int, text string) {
	s.Documents[uri] = Document{
		Text:       text,
		LanguageID: languageID,
		Version:    version,
	}
}

// UpdateDocument replaces an open document's text, keeping its language id.
func (s *State) UpdateDocument(uri string, version int, text string) {
	document := s.Documents[uri]
	document.Text = text
	document.Version = version
	s.Documents[uri] = document
}

func (s *State) CloseDocument(uri string) {
	delete(s.Documents, uri)
}
