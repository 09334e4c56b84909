package store

import (
	"sync"

	"fintrack/models"
)

// MemoryStore keeps the document in process memory. It backs tests and
// the "memory" data backend.
type MemoryStore struct {
	mu  sync.RWMutex
	doc models.Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{doc: models.Document{Transactions: []models.Transaction{}}}
}

// Seed replaces the stored document, for tests that need a known state.
func (ms *MemoryStore) Seed(doc models.Document) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.doc = clone(doc)
}

func (ms *MemoryStore) Load() (models.Document, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return clone(ms.doc), nil
}

func (ms *MemoryStore) Save(doc models.Document) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.doc = clone(doc)
	return nil
}

// clone copies the document so callers never share the backing slice.
func clone(doc models.Document) models.Document {
	out := doc
	out.Transactions = make([]models.Transaction, len(doc.Transactions))
	copy(out.Transactions, doc.Transactions)
	return out
}
