package service

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prakash1256/PDF-AI-CHAT/types"
)

func TestContextStoreEmpty(t *testing.T) {
	store := NewContextStore()

	_, ok := store.Current()
	assert.False(t, ok)
	assert.Empty(t, store.CurrentText())
}

func TestContextStoreSupersession(t *testing.T) {
	store := NewContextStore()

	store.Store(types.DocumentContext{Text: "first document", PageCount: 3})
	assert.Equal(t, "first document", store.CurrentText())

	store.Store(types.DocumentContext{Text: "second document", PageCount: 7})

	doc, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, "second document", doc.Text)
	assert.Equal(t, 7, doc.PageCount)
}

func TestContextStoreAtomicReplacement(t *testing.T) {
	store := NewContextStore()

	docA := types.DocumentContext{Text: strings.Repeat("a", 4096), PageCount: 1}
	docB := types.DocumentContext{Text: strings.Repeat("b", 4096), PageCount: 2}
	store.Store(docA)

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			if i%2 == 0 {
				store.Store(docB)
			} else {
				store.Store(docA)
			}
		}
		close(stop)
	}()

	// A reader must always observe a whole document, never a torn value.
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			doc, ok := store.Current()
			require.True(t, ok)
			if doc.PageCount == 1 {
				require.Equal(t, docA.Text, doc.Text)
			} else {
				require.Equal(t, docB.Text, doc.Text)
			}
		}
	}()

	wg.Wait()
}
