package cppgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SSimco/dynspv/grammar"
)

func TestEmitInstructionSimple(t *testing.T) {
	g := NewGenerator()
	ins := grammar.Instruction{
		Opname: "OpExample",
		Operands: []grammar.Operand{
			{Kind: "IdResultType"},
			{Kind: "IdResult"},
		},
	}

	text, err := g.EmitInstruction(testCatalog(), ins)
	require.NoError(t, err)

	// Two single-word operands plus the opcode word: fixed count of 3,
	// no runtime adjustment call.
	want := "\n    void OpExample(" +
		"\nIdResultType idResultType,\nIdResult idResult" +
		")\n    {\n    " +
		"uint16_t wordCount = 3;\n    " +
		"\n\n    writeWord(spv::Op::OpExample, wordCount);\n    " +
		"writeWords(idResultType, idResult);\n    }"
	assert.Equal(t, want, text)
	assert.NotContains(t, text, "countOperandsWord")
}

func TestEmitInstructionNoOperands(t *testing.T) {
	g := NewGenerator()

	text, err := g.EmitInstruction(testCatalog(), grammar.Instruction{Opname: "OpNop"})
	require.NoError(t, err)

	assert.Contains(t, text, "void OpNop()")
	assert.Contains(t, text, "uint16_t wordCount = 1;")
	assert.Contains(t, text, "writeWord(spv::Op::OpNop, wordCount);")
	assert.Contains(t, text, "writeWords();")
	assert.NotContains(t, text, "countOperandsWord")
}

func TestEmitInstructionRepeatedOperand(t *testing.T) {
	g := NewGenerator()
	ins := grammar.Instruction{
		Opname: "OpExample",
		Operands: []grammar.Operand{
			{Kind: "IdRef", Quantifier: grammar.QuantifierRepeated, Name: "'Indexes'"},
		},
	}

	text, err := g.EmitInstruction(testCatalog(), ins)
	require.NoError(t, err)

	want := "\n    void OpExample(const std::vector<IdRef>& indexes = {})" +
		"\n    {\n    " +
		"uint16_t wordCount = 1;\n    countOperandsWord(wordCount,indexes);" +
		"\n\n    writeWord(spv::Op::OpExample, wordCount);\n    " +
		"writeWords(indexes);\n    }"
	assert.Equal(t, want, text)
}

func TestEmitInstructionMixedOperands(t *testing.T) {
	g := NewGenerator()

	// Shaped like OpEntryPoint: enum + id are counted statically, the
	// string and the repeated ids are counted at runtime.
	ins := grammar.Instruction{
		Opname: "OpEntryPoint",
		Operands: []grammar.Operand{
			{Kind: "ExecutionModel"},
			{Kind: "IdRef", Name: "'Entry Point'"},
			{Kind: "LiteralString", Name: "'Name'"},
			{Kind: "IdRef", Quantifier: grammar.QuantifierRepeated, Name: "'Interface'"},
		},
	}

	text, err := g.EmitInstruction(testCatalog(), ins)
	require.NoError(t, err)

	assert.Contains(t, text, "spv::ExecutionModel executionModel")
	assert.Contains(t, text, "IdRef entryPoint")
	assert.Contains(t, text, "const std::string& name")
	assert.Contains(t, text, "const std::vector<IdRef>& interface = {}")
	assert.Contains(t, text, "uint16_t wordCount = 3;")
	assert.Contains(t, text, "countOperandsWord(wordCount,name, interface);")
	assert.Contains(t, text, "writeWords(executionModel, entryPoint, name, interface);")
}

func TestEmitInstructionOptionalOperand(t *testing.T) {
	g := NewGenerator()
	ins := grammar.Instruction{
		Opname: "OpAliasDomainDecl",
		Operands: []grammar.Operand{
			{Kind: "IdResult"},
			{Kind: "IdRef", Quantifier: grammar.QuantifierOptional, Name: "'Name'"},
		},
	}

	text, err := g.EmitInstruction(testCatalog(), ins)
	require.NoError(t, err)

	assert.Contains(t, text, "std::optional<IdRef> name = {}")
	assert.Contains(t, text, "uint16_t wordCount = 2;")
	assert.Contains(t, text, "countOperandsWord(wordCount,name);")
	assert.Contains(t, text, "writeWords(idResult, name);")
}

func TestEmitInstructionDeduplicatesNames(t *testing.T) {
	g := NewGenerator()

	// Two unnamed IdRef operands both derive "idRef"; every occurrence
	// gets an occurrence index, including the first.
	ins := grammar.Instruction{
		Opname: "OpExample",
		Operands: []grammar.Operand{
			{Kind: "IdRef"},
			{Kind: "IdRef"},
		},
	}

	text, err := g.EmitInstruction(testCatalog(), ins)
	require.NoError(t, err)

	assert.Contains(t, text, "IdRef idRef1")
	assert.Contains(t, text, "IdRef idRef2")
	assert.NotContains(t, text, "idRef,")
	assert.Contains(t, text, "writeWords(idRef1, idRef2);")
}

func TestEmitInstructionDedupKeepsDistinctNames(t *testing.T) {
	g := NewGenerator()
	ins := grammar.Instruction{
		Opname: "OpExample",
		Operands: []grammar.Operand{
			{Kind: "IdRef", Name: "'Operand 1'"},
			{Kind: "IdRef", Name: "'Operand 2'"},
		},
	}

	text, err := g.EmitInstruction(testCatalog(), ins)
	require.NoError(t, err)

	// Distinct derived names are left alone.
	assert.Contains(t, text, "writeWords(operand1, operand2);")
}

func TestEmitInstructionDefaultTailStopsAtRequired(t *testing.T) {
	g := NewGenerator()

	// The optional operand precedes a required one, so it gets no
	// default: defaults only cover the trailing optional/repeated run.
	ins := grammar.Instruction{
		Opname: "OpExample",
		Operands: []grammar.Operand{
			{Kind: "IdRef", Quantifier: grammar.QuantifierOptional, Name: "'First'"},
			{Kind: "LiteralInteger", Name: "'Second'"},
		},
	}

	text, err := g.EmitInstruction(testCatalog(), ins)
	require.NoError(t, err)

	assert.Contains(t, text, "std::optional<IdRef> first,")
	assert.NotContains(t, text, "first = {}")
	assert.Contains(t, text, "uint32_t second)")
}

func TestEmitInstructionDefaultTailRun(t *testing.T) {
	g := NewGenerator()
	ins := grammar.Instruction{
		Opname: "OpExample",
		Operands: []grammar.Operand{
			{Kind: "IdRef", Name: "'Base'"},
			{Kind: "IdRef", Quantifier: grammar.QuantifierOptional, Name: "'Extra'"},
			{Kind: "IdRef", Quantifier: grammar.QuantifierRepeated, Name: "'Rest'"},
		},
	}

	text, err := g.EmitInstruction(testCatalog(), ins)
	require.NoError(t, err)

	assert.Contains(t, text, "IdRef base,")
	assert.Contains(t, text, "std::optional<IdRef> extra = {}")
	assert.Contains(t, text, "const std::vector<IdRef>& rest = {}")

	// No default may precede a parameter without one.
	assertDefaultTailInvariant(t, text)
}

// assertDefaultTailInvariant checks that within a signature, once a
// parameter carries " = {}" every following parameter does too.
func assertDefaultTailInvariant(t *testing.T, text string) {
	t.Helper()
	open := strings.Index(text, "(")
	end := strings.Index(text, ")")
	require.True(t, open >= 0 && end > open)

	seenDefault := false
	for _, decl := range strings.Split(text[open+1:end], ",\n") {
		hasDefault := strings.HasSuffix(strings.TrimSpace(decl), "= {}")
		if seenDefault {
			assert.True(t, hasDefault, "parameter without default after one with default: %q", decl)
		}
		seenDefault = seenDefault || hasDefault
	}
}

func TestEmitInstructionUnknownKind(t *testing.T) {
	g := NewGenerator()
	ins := grammar.Instruction{
		Opname:   "OpExample",
		Operands: []grammar.Operand{{Kind: "IdMissing"}},
	}

	_, err := g.EmitInstruction(testCatalog(), ins)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OpExample")
	assert.Contains(t, err.Error(), "IdMissing")
}

func TestEmitInstructionCompositeOperand(t *testing.T) {
	g := NewGenerator()

	// Shaped like OpSwitch's target list.
	ins := grammar.Instruction{
		Opname: "OpSwitch",
		Operands: []grammar.Operand{
			{Kind: "IdRef", Name: "'Selector'"},
			{Kind: "IdRef", Name: "'Default'"},
			{Kind: "PairLiteralIntegerIdRef", Quantifier: grammar.QuantifierRepeated, Name: "'Target'"},
		},
	}

	text, err := g.EmitInstruction(testCatalog(), ins)
	require.NoError(t, err)

	assert.Contains(t, text, "IdRef _default")
	assert.Contains(t, text, "const std::vector<std::tuple<uint32_t, IdRef>>& target = {}")
	assert.Contains(t, text, "uint16_t wordCount = 3;")
	assert.Contains(t, text, "countOperandsWord(wordCount,target);")
	assert.Contains(t, text, "writeWords(selector, _default, target);")
}
