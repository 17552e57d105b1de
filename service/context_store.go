package service

import (
	"sync/atomic"

	"github.com/Prakash1256/PDF-AI-CHAT/types"
)

// ContextStore holds the extracted text of the most recently uploaded
// document. It is shared between upload and chat requests, so replacement is
// an atomic whole-value swap: a concurrent reader sees either the previous
// document or the new one in full, never a partial write.
type ContextStore struct {
	current atomic.Pointer[types.DocumentContext]
}

func NewContextStore() *ContextStore {
	return &ContextStore{}
}

// Store replaces the active document unconditionally. The previous document
// is superseded and can no longer be addressed.
func (s *ContextStore) Store(doc types.DocumentContext) {
	s.current.Store(&doc)
}

// Current returns the active document, or false if nothing has been
// uploaded yet.
func (s *ContextStore) Current() (types.DocumentContext, bool) {
	doc := s.current.Load()
	if doc == nil {
		return types.DocumentContext{}, false
	}
	return *doc, true
}

// CurrentText returns the active document's text, empty when absent.
func (s *ContextStore) CurrentText() string {
	doc := s.current.Load()
	if doc == nil {
		return ""
	}
	return doc.Text
}
