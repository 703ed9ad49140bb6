package quill

import (
	"context"
	"crypto/sha1"
	"fmt"
	"time"

	"github.com/ezraisw/quill/cache"
	"github.com/vmihailenco/msgpack/v5"
)

type (
	// Record is a short text attributed to an author.
	// Fields are encoded in declaration order.
	Record struct {
		Text   string `json:"text" msgpack:"text"`
		Author string `json:"author" msgpack:"author"`
	}

	Serializer interface {
		// Set context for cache access.
		SetContext(context.Context) Serializer

		// Set the cache used to memoize serialized records. Nil disables caching.
		// Keys do not carry the codec, so a cache must not be shared across codecs.
		SetCache(cache.Adapter) Serializer

		// Set TTL of cached records. Zero or less falls back to TTLDefault.
		SetTTL(ttl time.Duration) Serializer

		// Encode the record into text.
		Serialize(record Record) (string, error)

		// Decode text produced by Serialize back into a record.
		Deserialize(text string) (Record, error)

		// Drop the cached text of the record. No-op without a cache.
		Invalidate(record Record) error
	}
)

// Key identifies the record by the SHA-1 of its msgpack encoding.
func (r Record) Key() (string, error) {
	hash := sha1.New()
	if err := msgpack.NewEncoder(hash).Encode(&r); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", hash.Sum(nil)), nil
}
