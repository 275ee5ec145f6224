package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/google/uuid"

	"github.com/shelfchef/backend/internal/domain"
)

const keyPrefix = "inventory:"

// Store is a BadgerDB-backed implementation of domain.InventoryRepository.
// Items are stored as JSON under "inventory:{id}" keys.
type Store struct {
	db *badger.DB
}

// NewStore opens the Badger database at dataDir
func NewStore(dataDir string) (*Store, error) {
	opts := badger.DefaultOptions(dataDir)
	opts.Logger = nil // Badger's internal logging is too chatty

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open inventory database: %w", err)
	}

	return &Store{db: db}, nil
}

// NewInMemoryStore opens an ephemeral store, used in tests
func NewInMemoryStore() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory inventory database: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// List returns all inventory items, most recently added first
func (s *Store) List(ctx context.Context) ([]domain.InventoryItem, error) {
	var items []domain.InventoryItem

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(keyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var item domain.InventoryItem
				if err := json.Unmarshal(val, &item); err != nil {
					return fmt.Errorf("failed to decode inventory item: %w", err)
				}
				items = append(items, item)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].AddedAt.After(items[j].AddedAt)
	})

	return items, nil
}

// Get retrieves one inventory item by ID
func (s *Store) Get(ctx context.Context, id string) (*domain.InventoryItem, error) {
	var item domain.InventoryItem

	err := s.db.View(func(txn *badger.Txn) error {
		entry, err := txn.Get([]byte(keyPrefix + id))
		if err != nil {
			return err
		}
		return entry.Value(func(val []byte) error {
			return json.Unmarshal(val, &item)
		})
	})
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}

	return &item, nil
}

// Add stores an inventory item, assigning an ID and timestamp when missing
func (s *Store) Add(ctx context.Context, item *domain.InventoryItem) error {
	if item.Name == "" {
		return domain.ErrInvalidRequest
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.AddedAt.IsZero() {
		item.AddedAt = time.Now()
	}

	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to encode inventory item: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+item.ID), data)
	})
	if err != nil {
		return fmt.Errorf("failed to store inventory item: %w", err)
	}

	return nil
}

// Remove deletes an inventory item by ID
func (s *Store) Remove(ctx context.Context, id string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		key := []byte(keyPrefix + id)
		if _, err := txn.Get(key); err != nil {
			return err
		}
		return txn.Delete(key)
	})
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return domain.ErrItemNotFound
		}
		return fmt.Errorf("failed to remove inventory item: %w", err)
	}

	return nil
}

// Names returns just the item names, the shape the matching engine consumes
func (s *Store) Names(ctx context.Context) ([]string, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	return names, nil
}
