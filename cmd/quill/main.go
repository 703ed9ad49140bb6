package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ezraisw/quill"
	"github.com/ezraisw/quill/codec/json"
	"github.com/ezraisw/quill/logger/std"
)

func main() {
	log := std.NewLogger(os.Stderr, false)
	serializer := quill.NewSerializer(json.NewCodec(), log)

	record := quill.Record{
		Text:   "Nix Zero Setup",
		Author: "King Art",
	}

	if err := run(os.Stdout, serializer, record); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

// run writes nothing unless serialization succeeds.
func run(w io.Writer, serializer quill.Serializer, record quill.Record) error {
	text, err := serializer.Serialize(record)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "Serialized: %s\n", text)
	return err
}
