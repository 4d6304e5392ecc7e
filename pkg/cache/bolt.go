package cache

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

var bucketName = []byte("responses")

// headerSize is the length of the expiry prefix of every stored value.
const headerSize = 8

type boltCache struct {
	db  *bbolt.DB
	now func() time.Time
}

// NewBolt opens or creates a file-backed cache at path. Entries survive
// restarts, which keeps repeated CLI runs from hitting the API.
func NewBolt(path string) (Cache, error) {
	return newBolt(path, time.Now)
}

func newBolt(path string, now func() time.Time) (*boltCache, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open cache db: %w", err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}
	return &boltCache{db: db, now: now}, nil
}

func (c *boltCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	var (
		value []byte
		found bool
		stale bool
	)
	err := c.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(bucketName).Get([]byte(key))
		if len(raw) < headerSize {
			return nil
		}
		if expired(decodeDeadline(raw), c.now()) {
			stale = true
			return nil
		}
		// raw is only valid inside the transaction.
		value = append([]byte{}, raw[headerSize:]...)
		found = true
		return nil
	})
	if err != nil {
		return nil, false, wrapClosed(err)
	}
	if stale {
		return nil, false, c.Delete(context.Background(), key)
	}
	return value, found, nil
}

func (c *boltCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	raw := make([]byte, headerSize+len(value))
	encodeDeadline(raw, expiry(c.now(), ttl))
	copy(raw[headerSize:], value)
	err := c.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), raw)
	})
	return wrapClosed(err)
}

func (c *boltCache) Delete(_ context.Context, key string) error {
	err := c.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(key))
	})
	return wrapClosed(err)
}

func (c *boltCache) Close() error {
	return c.db.Close()
}

func encodeDeadline(b []byte, deadline time.Time) {
	var n int64
	if !deadline.IsZero() {
		n = deadline.UnixNano()
	}
	binary.BigEndian.PutUint64(b, uint64(n))
}

func decodeDeadline(b []byte) time.Time {
	n := int64(binary.BigEndian.Uint64(b))
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n)
}

func wrapClosed(err error) error {
	if errors.Is(err, bbolt.ErrDatabaseNotOpen) {
		return fmt.Errorf("%w: %v", ErrClosed, err)
	}
	return err
}
