// Package grammar models the SPIR-V machine-readable grammar file
// (spirv.core.grammar.json): operand kinds, instructions and their
// operand lists. Only the fields the generator consumes are decoded;
// everything else in the grammar file is ignored.
package grammar

// Category classifies an operand kind. The grammar file defines more
// categories than these, but only the ones below can appear as an
// instruction operand in the subset the generator supports.
type Category string

const (
	CategoryID        Category = "Id"
	CategoryLiteral   Category = "Literal"
	CategoryValueEnum Category = "ValueEnum"
	CategoryBitEnum   Category = "BitEnum"
	CategoryComposite Category = "Composite"
)

// Quantifier marks an operand as optional or repeated.
type Quantifier string

const (
	QuantifierNone     Quantifier = ""
	QuantifierOptional Quantifier = "?"
	QuantifierRepeated Quantifier = "*"
)

// OperandKind is one entry of the grammar's operand_kinds collection.
type OperandKind struct {
	Kind     string   `json:"kind"`
	Category Category `json:"category"`

	// Bases lists the member kinds of a Composite kind, in order.
	// Empty for every other category.
	Bases []string `json:"bases,omitempty"`
}

// Operand is one operand slot of an instruction's grammar entry.
type Operand struct {
	Kind       string     `json:"kind"`
	Quantifier Quantifier `json:"quantifier,omitempty"`

	// Name is the human-readable operand name from the grammar, verbatim.
	// Free text: it may contain quotes, line breaks and ellipsis markers.
	// Empty when the grammar entry has no name.
	Name string `json:"name,omitempty"`
}

// Instruction is one entry of the grammar's instructions collection.
type Instruction struct {
	Opname   string    `json:"opname"`
	Operands []Operand `json:"operands,omitempty"`
}

// Document is the decoded grammar file.
type Document struct {
	OperandKinds []OperandKind `json:"operand_kinds"`
	Instructions []Instruction `json:"instructions"`
}
