package client

import (
	"encoding/base64"
	"fmt"
	"log"
)

// Storage keys for the single persisted-document slot. Both must be present
// for a restore attempt; partial presence is treated as absent.
const (
	slotKeyData = "uploadedPdf"
	slotKeyName = "uploadedPdfName"
)

// StoredDocument is the document reconstructed from the persisted slot.
type StoredDocument struct {
	Name string
	Data []byte
	URL  string
}

// SessionStore keeps the active document's bytes in a single persisted slot
// so a restart does not lose the session. At most one slot exists; persisting
// overwrites the previous document.
type SessionStore struct {
	storage    Storage
	urls       *ObjectURLRegistry
	currentURL string
}

func NewSessionStore(storage Storage, urls *ObjectURLRegistry) *SessionStore {
	return &SessionStore{
		storage: storage,
		urls:    urls,
	}
}

// Persist encodes the document into the slot, replacing any prior one and
// releasing its display URL.
func (s *SessionStore) Persist(data []byte, name string) error {
	s.revokeCurrent()

	encoded := base64.StdEncoding.EncodeToString(data)
	if err := s.storage.Set(slotKeyData, encoded); err != nil {
		return fmt.Errorf("failed to persist document bytes: %w", err)
	}
	if err := s.storage.Set(slotKeyName, name); err != nil {
		return fmt.Errorf("failed to persist document name: %w", err)
	}
	return nil
}

// Restore rebuilds the document from the slot and derives a fresh display
// URL. Undecodable slot content is treated as corruption: the slot is deleted
// and Restore reports absent instead of propagating the decode error.
func (s *SessionStore) Restore() (*StoredDocument, bool) {
	encoded, okData := s.storage.Get(slotKeyData)
	name, okName := s.storage.Get(slotKeyName)
	if !okData || !okName {
		return nil, false
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		log.Printf("Stored document is corrupt, clearing slot: %v", err)
		s.Clear()
		return nil, false
	}

	s.revokeCurrent()
	url, err := s.urls.Create(data)
	if err != nil {
		log.Printf("Warning: failed to create display URL: %v", err)
	}
	s.currentURL = url

	return &StoredDocument{
		Name: name,
		Data: data,
		URL:  url,
	}, true
}

// Clear deletes the slot and releases the display URL deterministically.
func (s *SessionStore) Clear() {
	s.storage.Delete(slotKeyData)
	s.storage.Delete(slotKeyName)
	s.revokeCurrent()
}

func (s *SessionStore) revokeCurrent() {
	if s.currentURL != "" {
		s.urls.Revoke(s.currentURL)
		s.currentURL = ""
	}
}
