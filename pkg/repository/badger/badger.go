// Package badger persists the hazard workspace in a local key-value store.
// The whole hazard list and the matrix configuration are each stored as one
// JSON value: workshop documents are small, and whole-document writes keep
// list order trivially stable.
package badger

import (
	badgerdb "github.com/dgraph-io/badger/v4"
	"github.com/m-mizutani/goerr/v2"

	"github.com/hazop-lab/hazgrid/pkg/domain/interfaces"
)

var (
	keyHazards = []byte("hazgrid/hazards")
	keyMatrix  = []byte("hazgrid/matrix")
)

// Badger is the persistent repository backed by a badger key-value store.
type Badger struct {
	db     *badgerdb.DB
	hazard *hazardRepository
	matrix *matrixRepository
}

var _ interfaces.Repository = &Badger{}

// New opens (or creates) a badger store at path.
func New(path string) (*Badger, error) {
	opts := badgerdb.DefaultOptions(path).WithLogger(nil)
	db, err := badgerdb.Open(opts)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open badger store", goerr.V("path", path))
	}
	return wrap(db), nil
}

// NewInMemory opens a non-persistent store, used by tests.
func NewInMemory() (*Badger, error) {
	opts := badgerdb.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badgerdb.Open(opts)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open in-memory badger store")
	}
	return wrap(db), nil
}

func wrap(db *badgerdb.DB) *Badger {
	return &Badger{
		db:     db,
		hazard: &hazardRepository{db: db},
		matrix: &matrixRepository{db: db},
	}
}

func (b *Badger) Hazard() interfaces.HazardRepository {
	return b.hazard
}

func (b *Badger) Matrix() interfaces.MatrixRepository {
	return b.matrix
}

func (b *Badger) Close() error {
	if err := b.db.Close(); err != nil {
		return goerr.Wrap(err, "failed to close badger store")
	}
	return nil
}

// loadValue reads a key into dst via decode. A missing key reports found =
// false without error; callers supply their safe default.
func loadValue(db *badgerdb.DB, key []byte, decode func([]byte) error) (bool, error) {
	err := db.View(func(txn *badgerdb.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return decode(val)
		})
	})
	if err == badgerdb.ErrKeyNotFound {
		return false, nil
	}
	if err != nil {
		return false, goerr.Wrap(err, "failed to read from badger store", goerr.V("key", string(key)))
	}
	return true, nil
}

func storeValue(db *badgerdb.DB, key, value []byte) error {
	err := db.Update(func(txn *badgerdb.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		return goerr.Wrap(err, "failed to write to badger store", goerr.V("key", string(key)))
	}
	return nil
}
