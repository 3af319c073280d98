package cppgen

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/SSimco/dynspv/grammar"
)

// DefaultTemplate is the header template shipped with the generator.
// A template given on the command line takes precedence.
//
//go:embed dynspv.hpp.tmpl
var DefaultTemplate string

// Template placeholders substituted by GenerateHeader.
const (
	codePlaceholder    = "#generated_code"
	idTypesPlaceholder = "#generated_spv_id_types"
)

// GenerateHeader assembles the full header text: builder methods in
// lexicographic opname order and spv::Id aliases in lexicographic kind
// order, substituted into the template. The result is valid C++ but
// unformatted; FormatFile handles the rest.
func (g *Generator) GenerateHeader(doc *grammar.Document, template string) (string, error) {
	cat := grammar.NewCatalog(doc)

	instructions := make([]grammar.Instruction, len(doc.Instructions))
	copy(instructions, doc.Instructions)
	sort.Slice(instructions, func(i, j int) bool {
		return instructions[i].Opname < instructions[j].Opname
	})

	methods := make([]string, len(instructions))
	for i, ins := range instructions {
		text, err := g.EmitInstruction(cat, ins)
		if err != nil {
			return "", err
		}
		methods[i] = text
	}

	out := strings.Replace(template, codePlaceholder, strings.Join(methods, "\n"), 1)
	out = strings.Replace(out, idTypesPlaceholder, idTypeAliases(doc), 1)
	return out, nil
}

// idTypeAliases emits one "using <kind> = spv::Id;" line per
// Id-category operand kind, sorted by kind name.
func idTypeAliases(doc *grammar.Document) string {
	var kinds []string
	for _, kind := range doc.OperandKinds {
		if kind.Category == grammar.CategoryID {
			kinds = append(kinds, kind.Kind)
		}
	}
	sort.Strings(kinds)

	lines := make([]string, len(kinds))
	for i, kind := range kinds {
		lines[i] = fmt.Sprintf("using %s = spv::Id;", kind)
	}
	return strings.Join(lines, "\n")
}
