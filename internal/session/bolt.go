package session

import (
	"context"
	"time"

	bolt "go.etcd.io/bbolt"
)

const bucketSession = "session"

type boltStorage struct {
	db *bolt.DB
}

// NewBolt opens (creating if needed) a bbolt file at path.
func NewBolt(path string) (Storage, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketSession))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &boltStorage{db: db}, nil
}

func (s *boltStorage) Load(ctx context.Context) (string, error) {
	var record string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSession))
		v := b.Get([]byte(RecordKey))
		if v == nil {
			return ErrNoRecord
		}
		record = string(v)
		return nil
	})
	return record, err
}

func (s *boltStorage) Save(ctx context.Context, record string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSession))
		return b.Put([]byte(RecordKey), []byte(record))
	})
}

func (s *boltStorage) Delete(ctx context.Context) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSession))
		return b.Delete([]byte(RecordKey))
	})
}

func (s *boltStorage) Close() error {
	return s.db.Close()
}
