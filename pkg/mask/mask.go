// Package mask resolves format identifiers to display masks and formats raw
// input through them.
//
// Pattern tokens:
//
//	9, 0  required digit
//	#     recursive digit (repeats while input remains)
//	?     marks the rest of the pattern optional
//	a     letter
//	*     letter or digit
//
// Every other character is a literal that is emitted only while input
// remains. Input characters that cannot fill the current token are dropped.
package mask

import (
	"strings"
	"unicode"

	"github.com/goliatone/go-formstate/pkg/validator"
)

// Spec describes the mask attached to a format identifier. A Spec with an
// empty Pattern means "validate only, no visual mask".
type Spec struct {
	Format  string
	Pattern string
	Reverse bool
}

// HasMask reports whether s formats input.
func (s Spec) HasMask() bool {
	return s.Pattern != ""
}

var builtins = map[string]Spec{
	validator.FormatDate:  {Pattern: "99/99/9999"},
	validator.FormatTime:  {Pattern: "00:00"},
	validator.FormatPhone: {Pattern: "(99) 9999.9999?9"},
	validator.FormatCPF:   {Pattern: "999.999.999-99"},
	validator.FormatCNPJ:  {Pattern: "99.999.999/9999-99"},
	validator.FormatCEP:   {Pattern: "99999-999"},
	validator.FormatMoney: {Pattern: "#.##0,00", Reverse: true},
	validator.FormatEmail: {},
}

// Resolve maps a format identifier to its mask. Unknown identifiers are used
// verbatim as the pattern so fields can declare ad-hoc masks such as
// "AAA-9999".
func Resolve(format string) Spec {
	key := strings.ToLower(strings.TrimSpace(format))
	if spec, ok := builtins[key]; ok {
		spec.Format = key
		return spec
	}
	return Spec{Format: format, Pattern: format}
}

// Apply formats value through the mask. complete is false when a required
// token was left unfilled.
func (s Spec) Apply(value string) (formatted string, complete bool) {
	if !s.HasMask() {
		return value, true
	}
	if s.Reverse {
		return applyReverse([]rune(s.Pattern), []rune(value))
	}
	return applyForward([]rune(s.Pattern), []rune(value))
}

const optionalTail = '?'

type token struct {
	match     func(rune) bool
	optional  bool
	recursive bool
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isAlnum(r rune) bool { return isDigit(r) || unicode.IsLetter(r) }

var translation = map[rune]token{
	'9': {match: isDigit},
	'0': {match: isDigit},
	'#': {match: isDigit, optional: true, recursive: true},
	'a': {match: unicode.IsLetter},
	'*': {match: isAlnum},
}

func applyForward(pattern, input []rune) (string, bool) {
	var out strings.Builder
	i, j := 0, 0
	for i < len(pattern) && j < len(input) {
		if pattern[i] == optionalTail {
			i++
			continue
		}
		tok, isToken := translation[pattern[i]]
		if !isToken {
			out.WriteRune(pattern[i])
			if input[j] == pattern[i] {
				j++
			}
			i++
			continue
		}

		switch {
		case tok.match(input[j]):
			out.WriteRune(input[j])
			j++
			if !tok.recursive {
				i++
			}
		case tok.optional:
			i++
		default:
			j++
		}
	}
	return out.String(), requiredSatisfied(pattern[i:])
}

// applyReverse fills the pattern from the right, which is how currency masks
// grow their integer part. When input outlasts the pattern the segment that
// starts at the leftmost recursive token repeats.
func applyReverse(pattern, input []rune) (string, bool) {
	rp := reverseRunes(pattern)
	ri := reverseRunes(filterAccepted(pattern, input))

	loop := -1
	for idx, r := range rp {
		if tok, ok := translation[r]; ok && tok.recursive {
			loop = idx
			break
		}
	}

	var out []rune
	i, j := 0, 0
	lastPass := -1
	for j < len(ri) {
		if i >= len(rp) {
			// stop when a full pass over the recursive segment consumed nothing
			if loop < 0 || j == lastPass {
				break
			}
			lastPass = j
			i = loop
		}
		if rp[i] == optionalTail {
			i++
			continue
		}
		tok, isToken := translation[rp[i]]
		if !isToken {
			out = append(out, rp[i])
			i++
			continue
		}
		if tok.match(ri[j]) {
			out = append(out, ri[j])
			j++
			i++
			continue
		}
		if tok.optional {
			i++
			continue
		}
		j++
	}

	complete := i >= len(rp) || requiredSatisfied(rp[i:])
	return string(reverseRunes(out)), complete
}

// filterAccepted keeps only the input runes some token of pattern can hold,
// so literals typed by the user do not shift the reverse fill.
func filterAccepted(pattern, input []rune) []rune {
	var toks []token
	for _, r := range pattern {
		if tok, ok := translation[r]; ok {
			toks = append(toks, tok)
		}
	}
	out := make([]rune, 0, len(input))
	for _, r := range input {
		for _, tok := range toks {
			if tok.match(r) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

func requiredSatisfied(rest []rune) bool {
	for _, r := range rest {
		if r == optionalTail {
			return true
		}
		if tok, ok := translation[r]; ok && !tok.optional {
			return false
		}
	}
	return true
}

func reverseRunes(in []rune) []rune {
	out := make([]rune, len(in))
	for i, r := range in {
		out[len(in)-1-i] = r
	}
	return out
}
