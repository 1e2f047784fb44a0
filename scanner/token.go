package scanner

import "fmt"

// --- Token categories ------------------------------------------------------

// TokType is a category type for a Token.
type TokType int

// Token categories of RPN input.
const (
	EOF    TokType = -1 // end of input
	Word   TokType = 1  // any whitespace-delimited token not recognized otherwise
	Int    TokType = 2  // integer literal, optionally signed
	True   TokType = 3  // keyword "true"
	False  TokType = 4  // keyword "false"
	Quit   TokType = 5  // keyword "quit"
	Plus   TokType = 10 // +
	Equals TokType = 11 // =
	Bang   TokType = 12 // !
	Swap   TokType = 13 // <->
	Hash   TokType = 14 // #
	Query  TokType = 15 // ?
)

var tokTypeNames = map[TokType]string{
	EOF:    "EOF",
	Word:   "Word",
	Int:    "Int",
	True:   "true",
	False:  "false",
	Quit:   "quit",
	Plus:   "+",
	Equals: "=",
	Bang:   "!",
	Swap:   "<->",
	Hash:   "#",
	Query:  "?",
}

func (tt TokType) String() string {
	if s, ok := tokTypeNames[tt]; ok {
		return s
	}
	return fmt.Sprintf("TokType(%d)", int(tt))
}

// IsOperator is a predicate: is this the category of an operator symbol?
func (tt TokType) IsOperator() bool {
	return tt >= Plus && tt <= Query
}

// --- Tokens ----------------------------------------------------------------

// Token represents an input token, produced by a scanner.
//
// An example would be a token for an integer:
//
//    TokType = Int       // category of this token
//    Lexeme  = "-42"     // lexeme as it appeared in the input line
//    Value   = -42       // int32 value, set by the scanner
//    Span    = 3…6       // occured from byte position 3 in the input line
//
// Value is nil for tokens which do not carry a value, and for integer literals
// which do not fit into 32 bits.
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// DefaultToken is a very unsophisticated token type.
type DefaultToken struct {
	kind   TokType
	lexeme string
	Val    interface{}
	span   Span
}

// MakeDefaultToken creates a token without a value.
func MakeDefaultToken(typ TokType, lexeme string, span Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("<%v %q %v>", t.kind, t.lexeme, t.span)
}

// --- Spans -----------------------------------------------------------------

// Span captures the input positions of a token: a start position and the
// position just behind the end, as byte offsets within the input line.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
