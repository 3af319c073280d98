package cppgen

import (
	"regexp"
	"strings"

	"github.com/SSimco/dynspv/errors"
	"github.com/SSimco/dynspv/grammar"
)

// cppKeywords are reserved words in C++ that cannot be used as
// parameter names. A derived name that lands on one gets an
// underscore prefix.
var cppKeywords = map[string]bool{
	"asm": true, "auto": true, "break": true, "case": true, "catch": true,
	"char": true, "class": true, "const": true, "continue": true, "default": true,
	"delete": true, "do": true, "double": true, "else": true, "enum": true,
	"extern": true, "float": true, "for": true, "friend": true, "goto": true,
	"if": true, "inline": true, "int": true, "long": true, "new": true,
	"operator": true, "private": true, "protected": true, "public": true,
	"register": true, "return": true, "short": true, "signed": true,
	"sizeof": true, "static": true, "struct": true, "switch": true,
	"template": true, "this": true, "throw": true, "try": true, "typedef": true,
	"union": true, "unsigned": true, "virtual": true, "void": true,
	"volatile": true, "while": true,
}

// Operand names in the grammar are free documentation text. Three
// pattern families cover the irregular forms, tried in this order;
// anything else is a plain name.
var (
	// multi-line grouped name: "'Literal Number 1', 'Literal Number 2', ...\n..."
	reGroupLabel  = regexp.MustCompile(`'([\w ]*)', `)
	reDigitMarker = regexp.MustCompile(` \d`)

	// quoted comma-joined ellipsis group: "'Text, More Text, ...'"
	reQuotedEllipsis = regexp.MustCompile(`^'[A-Za-z_, ]+ \.\.\.'`)

	reWordToken = regexp.MustCompile(`\w+`)
	reDigits    = regexp.MustCompile(`\d`)
	reNonWord   = regexp.MustCompile(`[^\w]`)
)

// decapitalize lowers the first letter unless the whole string is
// uppercase (acronym-style names stay as they are).
func decapitalize(s string) string {
	if s == "" {
		return s
	}
	if s == strings.ToUpper(s) && s != strings.ToLower(s) {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// deriveParamName converts an operand's raw grammar name into a valid,
// lowercase-leading C++ parameter identifier. Operands without a name
// fall back to their kind name. The same input always yields the same
// identifier.
func (g *Generator) deriveParamName(op grammar.Operand) (string, error) {
	if op.Name == "" {
		return g.escapeReserved(decapitalize(op.Kind)), nil
	}

	name := op.Name
	switch {
	case strings.Contains(name, "\n"):
		// Templated group spread over several lines: take the first
		// quoted group label, drop its numbering, pluralize.
		m := reGroupLabel.FindStringSubmatch(name)
		if m == nil {
			return "", errors.AssertionFailedf("no group label in operand name %q", op.Name)
		}
		name = reDigitMarker.ReplaceAllString(m[1], "") + "s"

	case reQuotedEllipsis.MatchString(name):
		name = strings.Join(reWordToken.FindAllString(name, -1), " ") + "s"

	case strings.Contains(name, "..."):
		base, err := ellipsisBase(op.Name)
		if err != nil {
			return "", err
		}
		name = base + "s"
	}

	words := strings.Split(name, " ")
	for i := range words {
		words[i] = capitalize(words[i])
	}
	name = reNonWord.ReplaceAllString(strings.Join(words, ""), "")
	return g.escapeReserved(decapitalize(name)), nil
}

// ellipsisBase reduces a bare ellipsis name like "'Operand1', 'Operand2',
// ..." to its single base token. The grammar guarantees all tokens
// collapse to one base after digit stripping; more than one is a
// grammar-authoring error.
func ellipsisBase(raw string) (string, error) {
	var distinct []string
	seen := map[string]bool{}
	for _, token := range reWordToken.FindAllString(raw, -1) {
		base := strings.TrimSpace(reDigits.ReplaceAllString(token, ""))
		if !seen[base] {
			seen[base] = true
			distinct = append(distinct, base)
		}
	}
	if len(distinct) != 1 {
		return "", errors.AssertionFailedf(
			"ellipsis operand name %q does not reduce to a single base token (got %d)",
			raw, len(distinct))
	}
	return distinct[0], nil
}

func (g *Generator) escapeReserved(name string) string {
	if g.reserved[name] {
		return "_" + name
	}
	return name
}
