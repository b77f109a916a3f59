package shiftcat

import "strings"

// Kind discriminates the variants of Value: a closed, small enumeration
// that every other piece of the system switches on.
type Kind uint8

// The closed set of Value variants.
const (
	// KindID is the empty program, identity under catenation.
	KindID Kind = iota
	// KindConstant names a primitive combinator, e.g. Copy, Shift, Define.
	KindConstant
	// KindVariable names an entry resolved through the dictionary.
	KindVariable
	// KindCatenate sequences two or more children left to right.
	KindCatenate
	// KindQuote defers a program as a first-class datum.
	KindQuote
	// KindText carries an opaque string literal.
	KindText
	// KindPrompt carries an opaque natural-language message, never reduced.
	KindPrompt
)

func (k Kind) String() string {
	switch k {
	case KindID:
		return "id"
	case KindConstant:
		return "constant"
	case KindVariable:
		return "variable"
	case KindCatenate:
		return "catenate"
	case KindQuote:
		return "quote"
	case KindText:
		return "text"
	case KindPrompt:
		return "prompt"
	default:
		return "invalid"
	}
}

// Value is a term in the language: a tagged union over Kind. Fields not
// meaningful for a given Kind are left zero. Values are immutable once
// constructed; a Value owns its subvalues, and sharing a Value between the
// data and code stacks of a Machine is safe because nothing ever mutates
// one in place.
//
// Name carries a Constant's or Variable's identifier. Payload carries a
// Text's or Prompt's opaque string. Body carries a Quote's deferred
// program. Children carries a Catenate's flattened sequence.
type Value struct {
	kind     Kind
	name     string
	payload  string
	body     *Value
	children []Value
}

// ID is the empty program.
var ID = Value{kind: KindID}

// Constant constructs a primitive-combinator reference. The caller is
// responsible for using an uppercase-initial name; Constant does not
// validate the identifier grammar (the parser does that for text it reads).
func Constant(name string) Value { return Value{kind: KindConstant, name: name} }

// Variable constructs a dictionary-resolved name reference.
func Variable(name string) Value { return Value{kind: KindVariable, name: name} }

// Quote defers body as a first-class datum.
func Quote(body Value) Value { return Value{kind: KindQuote, body: &body} }

// Text constructs a string literal.
func Text(s string) Value { return Value{kind: KindText, payload: s} }

// Prompt constructs an opaque natural-language message.
func Prompt(s string) Value { return Value{kind: KindPrompt, payload: s} }

// Catenate is the smart constructor for sequential composition. It
// flattens: any argument that is itself a Catenate is spliced in place of
// itself, and any argument that is Id is dropped. Zero surviving elements
// yields Id; exactly one yields that element unwrapped. This is the sole
// place the flatness invariant is enforced, so every
// other constructor in this package, and every combinator rule, must build
// sequences through Catenate rather than assembling a children slice by
// hand.
func Catenate(vs ...Value) Value {
	flat := make([]Value, 0, len(vs))
	for _, v := range vs {
		switch v.kind {
		case KindID:
			continue
		case KindCatenate:
			flat = append(flat, v.children...)
		default:
			flat = append(flat, v)
		}
	}
	switch len(flat) {
	case 0:
		return ID
	case 1:
		return flat[0]
	default:
		return Value{kind: KindCatenate, children: flat}
	}
}

// Kind reports which variant v is.
func (v Value) Kind() Kind { return v.kind }

// Name returns a Constant's or Variable's identifier, and ok=false for any
// other Kind. This follows an accessor-raises-on-mismatch idiom (compare
// mcvoid-json's AsString/AsNumber/...), except that callers here are
// the reducer's dispatch table, which always wants a bool rather than an
// error it would just discard into a thunk.
func (v Value) Name() (string, bool) {
	if v.kind == KindConstant || v.kind == KindVariable {
		return v.name, true
	}
	return "", false
}

// Payload returns a Text's or Prompt's string, and ok=false otherwise.
func (v Value) Payload() (string, bool) {
	if v.kind == KindText || v.kind == KindPrompt {
		return v.payload, true
	}
	return "", false
}

// Body returns a Quote's deferred program, and ok=false otherwise.
func (v Value) Body() (Value, bool) {
	if v.kind == KindQuote {
		return *v.body, true
	}
	return Value{}, false
}

// Children returns a Catenate's flattened sequence, and ok=false
// otherwise. The returned slice is shared with v; callers must not mutate
// it.
func (v Value) Children() ([]Value, bool) {
	if v.kind == KindCatenate {
		return v.children, true
	}
	return nil, false
}

// elements returns v's immediate instruction sequence for pushing onto a
// stack: a Catenate's children in order, or a single-element slice holding
// v itself. Id contributes no elements.
func (v Value) elements() []Value {
	switch v.kind {
	case KindID:
		return nil
	case KindCatenate:
		return v.children
	default:
		return []Value{v}
	}
}

// Equal reports structural equality, used by tests asserting the
// parse/print round trip and the equational laws the combinators satisfy.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindID:
		return true
	case KindConstant, KindVariable:
		return a.name == b.name
	case KindText, KindPrompt:
		return a.payload == b.payload
	case KindQuote:
		return Equal(*a.body, *b.body)
	case KindCatenate:
		if len(a.children) != len(b.children) {
			return false
		}
		for i := range a.children {
			if !Equal(a.children[i], b.children[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// isIdentifierByte reports whether b may follow the initial letter of a
// Constant or Variable identifier ([A-Za-z0-9_-]). It is used by the
// parser; Value's own constructors do not enforce the identifier grammar.
func isIdentifierByte(b byte) bool {
	return b == '_' || b == '-' ||
		('A' <= b && b <= 'Z') || ('a' <= b && b <= 'z') || ('0' <= b && b <= '9')
}

func isUpperInitial(s string) bool { return len(s) > 0 && s[0] >= 'A' && s[0] <= 'Z' }
func isLowerInitial(s string) bool { return len(s) > 0 && s[0] >= 'a' && s[0] <= 'z' }

// validIdentifier reports whether s is entirely made of identifier bytes
// after its initial letter.
func validIdentifier(s string) bool {
	if len(s) == 0 {
		return false
	}
	if !strings.ContainsAny(s[:1], "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz") {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIdentifierByte(s[i]) {
			return false
		}
	}
	return true
}
