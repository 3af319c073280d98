package cppgen

import (
	"fmt"
	"strings"

	"github.com/SSimco/dynspv/errors"
	"github.com/SSimco/dynspv/grammar"
)

// Generator emits the dynspv builder header. The zero value is not
// usable; construct with NewGenerator.
type Generator struct {
	reserved map[string]bool
}

// NewGenerator creates a generator. Extra reserved words (from config)
// are escaped the same way as C++ keywords.
func NewGenerator(extraReserved ...string) *Generator {
	reserved := make(map[string]bool, len(cppKeywords)+len(extraReserved))
	for kw := range cppKeywords {
		reserved[kw] = true
	}
	for _, kw := range extraReserved {
		reserved[kw] = true
	}
	return &Generator{reserved: reserved}
}

// param is one generated builder parameter. Built per instruction and
// discarded; nothing is shared across instructions.
type param struct {
	typ        Type
	name       string
	hasDefault bool
}

// EmitInstruction generates the builder method for one instruction:
// signature, word count computation and the serializing body. The
// method name is the opname verbatim.
func (g *Generator) EmitInstruction(cat *grammar.Catalog, ins grammar.Instruction) (string, error) {
	params, err := g.buildParams(cat, ins)
	if err != nil {
		return "", err
	}
	params = dedupeNames(params)
	params = markTrailingDefaults(params)

	decls := make([]string, len(params))
	for i, p := range params {
		decls[i] = p.typ.ParamDecl() + " " + p.name
		if p.hasDefault {
			decls[i] += " = {}"
		}
	}
	paramList := strings.Join(decls, ",\n")
	if len(params) > 1 {
		paramList = "\n" + paramList
	}

	return fmt.Sprintf(`
    void %s(%s)
    {
    %s

    writeWord(spv::Op::%s, wordCount);
    %s
    }`, ins.Opname, paramList, wordCountCode(params), ins.Opname, writeCode(params)), nil
}

func (g *Generator) buildParams(cat *grammar.Catalog, ins grammar.Instruction) ([]param, error) {
	params := make([]param, 0, len(ins.Operands))
	for _, op := range ins.Operands {
		base, err := ResolveType(cat, op.Kind)
		if err != nil {
			return nil, errors.Wrapf(err, "instruction %s", ins.Opname)
		}
		typ, err := ApplyQuantifier(base, op.Quantifier)
		if err != nil {
			return nil, errors.Wrapf(err, "instruction %s, operand kind %s", ins.Opname, op.Kind)
		}
		name, err := g.deriveParamName(op)
		if err != nil {
			return nil, errors.Wrapf(err, "instruction %s", ins.Opname)
		}
		params = append(params, param{typ: typ, name: name})
	}
	return params, nil
}

// dedupeNames returns a new parameter list where every name occurring
// more than once carries a 1-based occurrence suffix, in declared
// order. Even the first occurrence is renamed: "name" becomes "name1",
// never stays bare.
func dedupeNames(params []param) []param {
	counts := make(map[string]int, len(params))
	for _, p := range params {
		counts[p.name]++
	}

	out := make([]param, len(params))
	copy(out, params)
	next := make(map[string]int)
	for i, p := range out {
		if counts[p.name] < 2 {
			continue
		}
		next[p.name]++
		out[i].name = fmt.Sprintf("%s%d", p.name, next[p.name])
	}
	return out
}

// markTrailingDefaults gives the trailing run of optional/vector
// parameters a value-initialized default, scanning from the end and
// stopping at the first parameter that is neither. A parameter with a
// default can therefore never precede one without.
func markTrailingDefaults(params []param) []param {
	out := make([]param, len(params))
	copy(out, params)
	for i := len(out) - 1; i >= 0; i-- {
		if out[i].typ.Kind != TypeOptional && out[i].typ.Kind != TypeVector {
			break
		}
		out[i].hasDefault = true
	}
	return out
}

// wordCountCode emits the fixed word count (1 header word plus one per
// single-word parameter) and, only when variable-size parameters
// exist, the runtime accumulation call over them.
func wordCountCode(params []param) string {
	wordCount := 1
	var variable []string
	for _, p := range params {
		if p.typ.Simple() {
			wordCount++
		} else {
			variable = append(variable, p.name)
		}
	}

	adjust := ""
	if len(variable) > 0 {
		adjust = fmt.Sprintf("countOperandsWord(wordCount,%s);", strings.Join(variable, ", "))
	}
	return fmt.Sprintf("uint16_t wordCount = %d;\n    %s", wordCount, adjust)
}

// writeCode emits the single serialization call passing every
// parameter in grammar order.
func writeCode(params []param) string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.name
	}
	return fmt.Sprintf("writeWords(%s);", strings.Join(names, ", "))
}
