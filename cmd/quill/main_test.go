package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/ezraisw/quill"
	"github.com/ezraisw/quill/codec/json"
	"github.com/ezraisw/quill/logger/std"
	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	serializer := quill.NewSerializer(json.NewCodec(), std.NewLogger(io.Discard, false))

	err := run(&buf, serializer, quill.Record{Text: "Nix Zero Setup", Author: "King Art"})
	assert.NoError(t, err)
	assert.Equal(t, "Serialized: {\"text\":\"Nix Zero Setup\",\"author\":\"King Art\"}\n", buf.String())
}

func TestRunFailure(t *testing.T) {
	var buf bytes.Buffer
	serializer := quill.NewSerializer(json.NewCodec(), std.NewLogger(io.Discard, false))

	err := run(&buf, serializer, quill.Record{Text: "\xff", Author: "King Art"})
	assert.ErrorIs(t, err, quill.ErrInvalidEncoding)
	assert.Empty(t, buf.String())
}
