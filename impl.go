package quill

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/ezraisw/quill/cache"
	"github.com/ezraisw/quill/codec"
	"github.com/ezraisw/quill/logger"
)

type defaultSerializer struct {
	codec  codec.Codec
	logger logger.Logger
	cache  cache.Adapter
	ttl    time.Duration
	ctx    context.Context
}

const (
	TTLDefault = time.Duration(10) * time.Minute
)

func NewSerializer(codec codec.Codec, logger logger.Logger) Serializer {
	return &defaultSerializer{
		codec:  codec,
		logger: logger,
		ttl:    TTLDefault,
		ctx:    context.Background(),
	}
}

func (s *defaultSerializer) SetContext(ctx context.Context) Serializer {
	s.ctx = ctx
	return s
}

func (s *defaultSerializer) SetCache(cache cache.Adapter) Serializer {
	s.cache = cache
	return s
}

func (s *defaultSerializer) SetTTL(ttl time.Duration) Serializer {
	if ttl <= 0 {
		ttl = TTLDefault
	}
	s.ttl = ttl
	return s
}

func (s defaultSerializer) Serialize(record Record) (string, error) {
	if err := validate(record); err != nil {
		return "", newSerializationError(CategoryValidate, "error while validating record", err)
	}

	if s.cache == nil {
		return s.encode(record)
	}

	key, err := record.Key()
	if err != nil {
		// Still serializable, just not cacheable.
		s.logger.Error(fmt.Errorf("error while creating key (%w)", err))
		return s.encode(record)
	}

	data, err := s.cache.Get(s.ctx, key)
	if err == nil {
		s.logger.Debug("cache hit", key)
		return string(data), nil
	}
	if !errors.Is(err, cache.ErrNotFound) {
		s.logger.Error(fmt.Errorf("error while getting cached value (%w)", err))
	}

	text, err := s.encode(record)
	if err != nil {
		return "", err
	}

	s.logger.Debug("store value", key)
	if err := s.cache.Set(s.ctx, key, s.ttl, []byte(text)); err != nil {
		// The encoded text is still valid.
		s.logger.Error(fmt.Errorf("error while storing value (%w)", err))
	}

	return text, nil
}

func (s defaultSerializer) Deserialize(text string) (Record, error) {
	var record Record
	if err := s.codec.Unmarshal([]byte(text), &record); err != nil {
		return Record{}, newSerializationError(CategoryDecode, "error while decoding record", err)
	}
	return record, nil
}

func (s defaultSerializer) Invalidate(record Record) error {
	if s.cache == nil {
		return nil
	}

	key, err := record.Key()
	if err != nil {
		return err
	}

	exists, err := s.cache.Exists(s.ctx, key)
	if err != nil {
		return err
	}
	if !exists {
		s.logger.Debug("not cached", key)
		return nil
	}

	s.logger.Debug("invalidate", key)
	return s.cache.Delete(s.ctx, key)
}

func (s defaultSerializer) encode(record Record) (string, error) {
	data, err := s.codec.Marshal(&record)
	if err != nil {
		return "", newSerializationError(CategoryEncode, "error while encoding record", err)
	}
	return string(data), nil
}

func validate(record Record) error {
	if !utf8.ValidString(record.Text) {
		return fmt.Errorf("%w: text", ErrInvalidEncoding)
	}
	if !utf8.ValidString(record.Author) {
		return fmt.Errorf("%w: author", ErrInvalidEncoding)
	}
	return nil
}
