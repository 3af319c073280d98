package grammar

import (
	"encoding/json"
	"io"
	"os"

	"github.com/SSimco/dynspv/errors"
)

// Parse decodes a grammar document from r.
func Parse(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode grammar JSON")
	}
	if len(doc.OperandKinds) == 0 {
		return nil, errors.New("grammar has no operand_kinds")
	}
	if len(doc.Instructions) == 0 {
		return nil, errors.New("grammar has no instructions")
	}
	return &doc, nil
}

// LoadFile reads and decodes the grammar file at path.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open grammar file %s", path)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse grammar file %s", path)
	}
	return doc, nil
}
