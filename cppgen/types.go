// Package cppgen generates the dynspv C++ builder header from the
// SPIR-V grammar: one builder method per instruction, one spv::Id alias
// per Id-category operand kind, substituted into the header template.
package cppgen

import (
	"strings"

	"github.com/SSimco/dynspv/errors"
	"github.com/SSimco/dynspv/grammar"
)

// TypeKind tags a resolved C++ parameter type.
type TypeKind int

const (
	// TypeID is an Id-category operand kind, rendered as its own
	// spv::Id alias so signatures stay self-documenting.
	TypeID TypeKind = iota
	// TypeUInt32 covers the integer literal kinds.
	TypeUInt32
	// TypeString is an owned std::string literal.
	TypeString
	// TypeFloat32 is a float literal.
	TypeFloat32
	// TypeConstant is a context-dependent number, rendered as the
	// constrained "spvConstant auto" parameter.
	TypeConstant
	// TypeEnum is a ValueEnum kind (mutually exclusive enumerators).
	TypeEnum
	// TypeBitmask is a BitEnum kind (combinable flags).
	TypeBitmask
	// TypeTuple is a Composite kind over its resolved base types.
	TypeTuple
	// TypeOptional wraps a type for a '?' quantifier.
	TypeOptional
	// TypeVector wraps a type for a '*' quantifier.
	TypeVector
)

// Type is a resolved parameter type expression.
type Type struct {
	Kind TypeKind

	// Name is the operand kind name for TypeID, TypeEnum and TypeBitmask.
	Name string

	// Elem is the wrapped type for TypeOptional and TypeVector.
	Elem *Type

	// Elems are the member types for TypeTuple, in base order.
	Elems []Type
}

// LiteralTypes maps Literal-category operand kind names to their C++
// representation. The table must be exhaustive for the grammar in use;
// an unknown literal kind aborts generation.
var LiteralTypes = map[string]TypeKind{
	"LiteralInteger":                TypeUInt32,
	"LiteralString":                 TypeString,
	"LiteralFloat":                  TypeFloat32,
	"LiteralContextDependentNumber": TypeConstant,
	"LiteralExtInstInteger":         TypeUInt32,
	"LiteralSpecConstantOpInteger":  TypeUInt32,
}

// ResolveType resolves an operand kind name to its C++ type, recursing
// through composite bases. Composite definitions are assumed acyclic;
// the grammar has never contained a cycle and there is no guard.
func ResolveType(cat *grammar.Catalog, kind string) (Type, error) {
	info, err := cat.Lookup(kind)
	if err != nil {
		return Type{}, err
	}

	switch info.Category {
	case grammar.CategoryID:
		return Type{Kind: TypeID, Name: info.Kind}, nil

	case grammar.CategoryLiteral:
		lit, ok := LiteralTypes[info.Kind]
		if !ok {
			return Type{}, errors.Newf("unmapped literal kind: %s", info.Kind)
		}
		return Type{Kind: lit}, nil

	case grammar.CategoryValueEnum:
		return Type{Kind: TypeEnum, Name: info.Kind}, nil

	case grammar.CategoryBitEnum:
		return Type{Kind: TypeBitmask, Name: info.Kind}, nil

	case grammar.CategoryComposite:
		elems := make([]Type, 0, len(info.Bases))
		for _, base := range info.Bases {
			elem, err := ResolveType(cat, base)
			if err != nil {
				return Type{}, errors.Wrapf(err, "composite kind %s", info.Kind)
			}
			elems = append(elems, elem)
		}
		return Type{Kind: TypeTuple, Elems: elems}, nil

	default:
		return Type{}, errors.Newf("unexpected operand category %q for kind %s", info.Category, info.Kind)
	}
}

// ApplyQuantifier wraps a resolved base type per the operand's
// quantifier. It is applied once, never to tuple members.
func ApplyQuantifier(t Type, q grammar.Quantifier) (Type, error) {
	switch q {
	case grammar.QuantifierNone:
		return t, nil
	case grammar.QuantifierOptional:
		return Type{Kind: TypeOptional, Elem: &t}, nil
	case grammar.QuantifierRepeated:
		return Type{Kind: TypeVector, Elem: &t}, nil
	default:
		return Type{}, errors.Newf("unexpected operand quantifier %q", q)
	}
}

// Cpp renders the C++ spelling of the type.
func (t Type) Cpp() string {
	switch t.Kind {
	case TypeID:
		return t.Name
	case TypeUInt32:
		return "uint32_t"
	case TypeString:
		return "std::string"
	case TypeFloat32:
		return "float"
	case TypeConstant:
		return "spvConstant auto"
	case TypeEnum:
		return "spv::" + t.Name
	case TypeBitmask:
		return "spv::" + t.Name + "Mask"
	case TypeTuple:
		elems := make([]string, len(t.Elems))
		for i, elem := range t.Elems {
			elems[i] = elem.Cpp()
		}
		return "std::tuple<" + strings.Join(elems, ", ") + ">"
	case TypeOptional:
		return "std::optional<" + t.Elem.Cpp() + ">"
	case TypeVector:
		return "std::vector<" + t.Elem.Cpp() + ">"
	}
	return ""
}

// Simple reports whether the type occupies exactly one word in the
// serialized instruction, known at generation time. Strings, generic
// constants, tuples, optionals and vectors have their word size
// computed at call time instead.
func (t Type) Simple() bool {
	switch t.Kind {
	case TypeString, TypeConstant, TypeTuple, TypeOptional, TypeVector:
		return false
	}
	return true
}

// ParamDecl renders the type as a function parameter declaration:
// variable-size types pass by const reference, everything else by value.
func (t Type) ParamDecl() string {
	switch t.Kind {
	case TypeString, TypeVector, TypeTuple:
		return "const " + t.Cpp() + "&"
	}
	return t.Cpp()
}
