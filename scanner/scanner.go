/*
Package scanner implements a tokenizer for lines of RPN input.

Input lines consist of whitespace-delimited tokens: integer literals, the
keywords "true", "false" and "quit", and the operator symbols

    +  =  !  <->  #  ?

Scanning is done by a DFA compiled with lexmachine. Tokens are never glued
together: a run of non-whitespace characters which is not exactly a literal,
keyword or operator, e.g. "3+4", is delivered as a single Word token, which
interpreters should report as a syntax error.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'gorpn.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("gorpn.scanner")
}

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() Token
	SetErrorHandler(func(error))
}

// Literals are the operator symbols.
var literals = map[string]TokType{
	"+":   Plus,
	"=":   Equals,
	"!":   Bang,
	"<->": Swap,
	"#":   Hash,
	"?":   Query,
}

// Keywords of the RPN language.
var keywords = map[string]TokType{
	"true":  True,
	"false": False,
	"quit":  Quit,
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- lexmachine adapter ----------------------------------------------------

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
// An adapter holds a compiled DFA and may be used for any number of input
// lines.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter for RPN input.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter() (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	// lexmachine prefers the longest match; for matches of equal length
	// the pattern added first wins. The Word pattern therefore has to
	// come last.
	adapter.Lexer.Add([]byte(` +`), Skip)
	for lit, id := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(lit, id))
	}
	for name, id := range keywords {
		adapter.Lexer.Add([]byte(name), MakeToken(name, id))
	}
	adapter.Lexer.Add([]byte(`(\+|\-)?[0-9]+`), MakeToken("INT", Int))
	adapter.Lexer.Add([]byte(`[^ ]+`), MakeToken("WORD", Word))
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input line. The scanner will
// implement the Tokenizer interface.
//
// Every Unicode white space character separates tokens, including vertical
// tab, form feed and no-break space. Spans of tokens refer to byte positions
// of the original input.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner(blankSpaces(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{s, logError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

var _ Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// NextToken is part of the Tokenizer interface. After the end of input has
// been reached, NextToken will return EOF tokens.
func (lms *LMScanner) NextToken() Token {
	if lms.scanner == nil {
		return MakeDefaultToken(EOF, "", Span{0, 0})
	}
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.scanner.TC = ui.FailTC
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		return MakeDefaultToken(EOF, "", Span{0, 0})
	}
	token := tok.(*lexmachine.Token)
	t := DefaultToken{
		kind:   TokType(token.Type),
		lexeme: string(token.Lexeme),
		Val:    token.Value,
		span:   Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	}
	tracer().Debugf("token %v", t)
	return t
}

// blankSpaces replaces every white space rune by as many ASCII blanks as
// its UTF-8 encoding is long, keeping byte offsets intact. The DFA only has
// to know about ' ' then.
func blankSpaces(input string) []byte {
	b := []byte(input)
	for i, r := range input {
		if r != ' ' && unicode.IsSpace(r) {
			for j := 0; j < utf8.RuneLen(r); j++ {
				b[i+j] = ' '
			}
		}
	}
	return b
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
// Integer and boolean tokens get their value attached.
func MakeToken(name string, id TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(id), tokenValue(id, string(m.Bytes)), m), nil
	}
}

func tokenValue(id TokType, lexeme string) interface{} {
	switch id {
	case Int:
		n, err := strconv.ParseInt(lexeme, 10, 32)
		if err != nil {
			tracer().Debugf("integer literal %q out of range", lexeme)
			return nil
		}
		return int32(n)
	case True:
		return true
	case False:
		return false
	}
	return nil
}
