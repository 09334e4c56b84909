package store

import "fintrack/models"

// Store is the persistence capability for the transaction collection.
// Load returns the full document; implementations are expected to fail
// open (empty document, fault recorded) rather than surface read errors
// for a missing or corrupt backing file. Save rewrites the whole
// document and reports faults to the caller.
type Store interface {
	Load() (models.Document, error)
	Save(models.Document) error
}
