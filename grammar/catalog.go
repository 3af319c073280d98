package grammar

import (
	"github.com/SSimco/dynspv/errors"
)

// Catalog is the operand-kind lookup table, built once from a Document
// and read-only afterwards.
type Catalog struct {
	kinds map[string]OperandKind
}

// NewCatalog indexes the document's operand kinds by kind name.
func NewCatalog(doc *Document) *Catalog {
	kinds := make(map[string]OperandKind, len(doc.OperandKinds))
	for _, kind := range doc.OperandKinds {
		kinds[kind.Kind] = kind
	}
	return &Catalog{kinds: kinds}
}

// Lookup returns the operand kind named by kind. A kind referenced by an
// instruction operand or a composite base but absent from the grammar is
// a fatal grammar inconsistency, reported as an error naming the kind.
func (c *Catalog) Lookup(kind string) (OperandKind, error) {
	info, ok := c.kinds[kind]
	if !ok {
		return OperandKind{}, errors.Newf("unknown operand kind: %s", kind)
	}
	return info, nil
}

// Len returns the number of operand kinds in the catalog.
func (c *Catalog) Len() int {
	return len(c.kinds)
}
