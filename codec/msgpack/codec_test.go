package msgpack_test

import (
	"testing"

	"github.com/ezraisw/quill/codec/msgpack"
	"github.com/stretchr/testify/assert"
)

type pair struct {
	First  string `msgpack:"first"`
	Second string `msgpack:"second"`
}

func TestRoundTrip(t *testing.T) {
	c := msgpack.NewCodec()
	in := pair{First: "Nix Zero Setup", Second: "King Art"}

	data, err := c.Marshal(&in)
	assert.NoError(t, err)

	var out pair
	assert.NoError(t, c.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestUnmarshalError(t *testing.T) {
	var out pair
	assert.Error(t, msgpack.NewCodec().Unmarshal([]byte{0xc1}, &out))
}
