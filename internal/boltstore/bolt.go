package boltstore

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"court-reservation-api/internal/model"
)

const (
	bucketDepartments  = "departments"
	bucketAccounts     = "accounts"
	bucketCourtTypes   = "court_types"
	bucketCourts       = "courts"
	bucketReservations = "reservations"
)

var buckets = []string{bucketDepartments, bucketAccounts, bucketCourtTypes, bucketCourts, bucketReservations}

// Store keeps everything in one bolt file. Bolt allows a single writer at
// a time, so checks done inside an Update are atomic with the write.
type Store struct {
	db *bolt.DB
}

func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range buckets {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("creating %s bucket: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func itob(v int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}

// classify passes taxonomy errors through and wraps the rest.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var pe *model.PersistenceError
	switch {
	case errors.As(err, &pe),
		errors.Is(err, model.ErrNotFound),
		errors.Is(err, model.ErrConflict),
		errors.Is(err, model.ErrValidation),
		errors.Is(err, model.ErrStale):
		return err
	}
	return &model.PersistenceError{Op: op, Err: err}
}

func (s *Store) view(ctx context.Context, op string, fn func(tx *bolt.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return &model.PersistenceError{Op: op, Err: err}
	}
	return classify(op, s.db.View(fn))
}

func (s *Store) update(ctx context.Context, op string, fn func(tx *bolt.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return &model.PersistenceError{Op: op, Err: err}
	}
	return classify(op, s.db.Update(fn))
}

func get[T any](tx *bolt.Tx, bucket string, id int64, entity string) (*T, error) {
	data := tx.Bucket([]byte(bucket)).Get(itob(id))
	if data == nil {
		return nil, &model.NotFoundError{Entity: entity, ID: id}
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decoding %s %d: %w", entity, id, err)
	}
	return &v, nil
}

func put(tx *bolt.Tx, bucket string, id int64, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", bucket, err)
	}
	return tx.Bucket([]byte(bucket)).Put(itob(id), data)
}

func nextID(tx *bolt.Tx, bucket string) (int64, error) {
	seq, err := tx.Bucket([]byte(bucket)).NextSequence()
	return int64(seq), err
}

func each[T any](tx *bolt.Tx, bucket string, fn func(v *T) error) error {
	return tx.Bucket([]byte(bucket)).ForEach(func(k, data []byte) error {
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("decoding %s: %w", bucket, err)
		}
		return fn(&v)
	})
}
