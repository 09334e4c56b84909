// Package service implements the transaction operations on top of a
// Store: create, read, filtered listing, partial update and delete.
package service

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"fintrack/models"
	"fintrack/query"
	"fintrack/store"
)

var (
	ErrNotFound   = errors.New("transaction not found")
	ErrMissingID  = errors.New("id is required")
	ErrZeroAmount = errors.New("amount cannot be zero")
)

// TransactionService orchestrates load-mutate-save cycles against the
// store. A single mutex serializes operations so two concurrent writers
// cannot silently drop each other's saves.
type TransactionService struct {
	mu     sync.Mutex
	store  store.Store
	nextID int64
}

func NewTransactionService(st store.Store) *TransactionService {
	return &TransactionService{store: st}
}

// load applies the fail-open policy: a store fault yields an empty
// collection rather than an error for the caller.
func (s *TransactionService) load() models.Document {
	doc, err := s.store.Load()
	if err != nil {
		log.Warn().Err(err).Msg("load failed, continuing with empty collection")
		return models.Document{Transactions: []models.Transaction{}}
	}
	return doc
}

// persist records save faults without surfacing them; the mutation has
// already been applied and is acknowledged to the caller either way.
func (s *TransactionService) persist(doc models.Document) {
	if err := s.store.Save(doc); err != nil {
		log.Error().Err(err).Msg("save failed, mutation acknowledged but not persisted")
	}
}

// Create fills defaults for absent fields, assigns the next id and
// appends the record. Ids come from a monotonic counter so a deleted
// id is never reissued within the process lifetime.
func (s *TransactionService) Create(in models.CreateTransaction) models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()

	if next := maxNumericID(doc.Transactions) + 1; next > s.nextID {
		s.nextID = next
	}
	t := models.Transaction{
		ID:       strconv.FormatInt(s.nextID, 10),
		Category: models.CategoryOther,
		Date:     time.Now().UTC().Format("2006-01-02"),
	}
	s.nextID++

	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Amount != nil {
		t.Amount = *in.Amount
	}
	if in.Category != nil {
		t.Category = *in.Category
	}
	if in.Date != nil {
		t.Date = *in.Date
	}

	doc.Transactions = append(doc.Transactions, t)
	s.persist(doc)

	log.Info().Str("id", t.ID).Str("category", t.Category).Float64("amount", t.Amount).Msg("transaction created")
	return t
}

// Get returns the transaction with the given id.
func (s *TransactionService) Get(id string) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	if i := indexOf(doc.Transactions, id); i >= 0 {
		return doc.Transactions[i], nil
	}
	return models.Transaction{}, ErrNotFound
}

// List filters and paginates the collection.
func (s *TransactionService) List(f query.Filter) models.TransactionsPage {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := query.Apply(s.load().Transactions, f)
	return models.TransactionsPage{
		Data:  res.Data,
		Total: res.Total,
		Page:  res.Page,
		Limit: res.Limit,
	}
}

// Update merges the supplied fields over the existing record. Absent
// fields are left unchanged; the id never changes. An explicit zero
// amount is rejected so an update can never zero out a record.
func (s *TransactionService) Update(in models.UpdateTransaction) (models.Transaction, error) {
	if in.ID == "" {
		return models.Transaction{}, ErrMissingID
	}
	if in.Amount != nil && *in.Amount == 0 {
		return models.Transaction{}, ErrZeroAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	i := indexOf(doc.Transactions, in.ID)
	if i < 0 {
		return models.Transaction{}, ErrNotFound
	}

	t := doc.Transactions[i]
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Amount != nil {
		t.Amount = *in.Amount
	}
	if in.Category != nil {
		t.Category = *in.Category
	}
	if in.Date != nil {
		t.Date = *in.Date
	}
	t.ID = in.ID

	doc.Transactions[i] = t
	s.persist(doc)

	log.Info().Str("id", t.ID).Msg("transaction updated")
	return t, nil
}

// Delete removes the record with the given id. Deleting an id twice
// fails the second time; there is no tombstone to make it idempotent.
func (s *TransactionService) Delete(id string) error {
	if id == "" {
		return ErrMissingID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	i := indexOf(doc.Transactions, id)
	if i < 0 {
		return ErrNotFound
	}

	doc.Transactions = append(doc.Transactions[:i], doc.Transactions[i+1:]...)
	s.persist(doc)

	log.Info().Str("id", id).Msg("transaction deleted")
	return nil
}

func indexOf(transactions []models.Transaction, id string) int {
	for i, t := range transactions {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// maxNumericID scans the collection for the highest numeric id; ids
// that do not parse as integers are skipped.
func maxNumericID(transactions []models.Transaction) int64 {
	var max int64
	for _, t := range transactions {
		if n, err := strconv.ParseInt(t.ID, 10, 64); err == nil && n > max {
			max = n
		}
	}
	return max
}
