/*
Package interp implements a line interpreter for RPN expressions.

An interpreter splits a line of input into tokens and dispatches each token
either to a push of a literal value or to the application of an operator.
After a line has been evaluated, exactly one value has to remain on the stack:
this is the result of the line. If no value remains, the line is in error
with gorpn.ErrEmpty; if more than one value remains, the line is in error with
gorpn.ErrExtra.

The first error aborts evaluation of a line. Token "quit" may appear anywhere
in a line and ends the session immediately, whatever came before it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package interp

import (
	"math/rand"

	"github.com/npillmayer/gorpn"
	"github.com/npillmayer/gorpn/scanner"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gorpn.interp'.
func tracer() tracing.Trace {
	return tracing.Select("gorpn.interp")
}

// Interpreter evaluates lines of RPN input. An interpreter holds the state
// of a session and is not safe for concurrent use.
type Interpreter struct {
	lm    *scanner.LMAdapter
	stack *gorpn.Stack
	keep  bool       // keep line results on the stack
	rnd   *rand.Rand // random source for operator Rand, may be nil
}

// Option configures an interpreter.
type Option func(*Interpreter)

// KeepStack sets the stack policy of a session. By default, every line is
// evaluated on a fresh stack. With KeepStack(true), the result of a line
// stays on the stack and is available as an operand for the next line:
//
//    > 3 4 +
//    Reply> Int(7)
//    > 1 +
//    Reply> Int(8)
//
// Any error clears the stack.
func KeepStack(b bool) Option {
	return func(intp *Interpreter) {
		intp.keep = b
	}
}

// WithRandom sets a random source for operator Rand.
func WithRandom(r *rand.Rand) Option {
	return func(intp *Interpreter) {
		intp.rnd = r
	}
}

// New creates an interpreter. It will return an error if the scanner could
// not be set up.
func New(opts ...Option) (*Interpreter, error) {
	lm, err := scanner.NewLMAdapter()
	if err != nil {
		return nil, err
	}
	intp := &Interpreter{lm: lm}
	for _, opt := range opts {
		opt(intp)
	}
	intp.stack = intp.newStack()
	return intp, nil
}

func (intp *Interpreter) newStack() *gorpn.Stack {
	if intp.rnd != nil {
		return gorpn.New(gorpn.WithRandom(intp.rnd))
	}
	return gorpn.New()
}

// Stack returns the values currently held by the session stack, bottom first.
// Unless the session keeps its stack, this is always empty between lines.
func (intp *Interpreter) Stack() []gorpn.Value {
	return intp.stack.Values()
}

// Eval evaluates a line of input within the session and returns the result
// of the line.
func (intp *Interpreter) Eval(line string) (gorpn.Value, error) {
	tracer().Debugf("eval %q", line)
	if !intp.keep {
		intp.stack.Clear()
	}
	err := intp.EvalLine(intp.stack, line)
	if err != nil {
		intp.stack.Clear()
		return nil, err
	}
	v, err := Result(intp.stack)
	if err != nil {
		intp.stack.Clear()
		return nil, err
	}
	if intp.keep {
		return v, intp.stack.Push(v)
	}
	return v, nil
}

// EvalLine evaluates the tokens of a line against a stack. It returns the
// first error encountered. Stack values pushed or popped before the error
// remain in effect.
func (intp *Interpreter) EvalLine(stack *gorpn.Stack, line string) error {
	sc, err := intp.lm.Scanner(line)
	if err != nil {
		return err
	}
	return evalTokens(stack, sc)
}

func evalTokens(stack *gorpn.Stack, sc scanner.Tokenizer) error {
	sc.SetErrorHandler(func(e error) {
		tracer().Errorf("cannot scan input: %v", e)
	})
	for tok := sc.NextToken(); tok.TokType() != scanner.EOF; tok = sc.NextToken() {
		if err := dispatch(stack, tok); err != nil {
			tracer().Debugf("token %q: %v", tok.Lexeme(), err)
			return err
		}
	}
	return nil
}

func dispatch(stack *gorpn.Stack, tok scanner.Token) error {
	switch tok.TokType() {
	case scanner.Int:
		n, ok := tok.Value().(int32)
		if !ok { // literal out of range
			return syntaxError(tok)
		}
		return stack.Push(gorpn.Int(n))
	case scanner.True:
		return stack.Push(gorpn.Bool(true))
	case scanner.False:
		return stack.Push(gorpn.Bool(false))
	case scanner.Quit:
		return gorpn.ErrQuit
	case scanner.Plus:
		return stack.Eval(gorpn.Add)
	case scanner.Equals:
		return stack.Eval(gorpn.Eq)
	case scanner.Bang:
		return stack.Eval(gorpn.Neg)
	case scanner.Swap:
		return stack.Eval(gorpn.Swap)
	case scanner.Hash:
		return stack.Eval(gorpn.Rand)
	case scanner.Query:
		return stack.Eval(gorpn.Cond)
	}
	return syntaxError(tok)
}

func syntaxError(tok scanner.Token) error {
	return gorpn.SyntaxError{Lexeme: tok.Lexeme(), Pos: tok.Span().From()}
}

// Result checks the stack after a line has been evaluated. It pops and
// returns the single remaining value. If the stack is empty, Result returns
// gorpn.ErrEmpty; if more than one value remains, it returns gorpn.ErrExtra.
func Result(stack *gorpn.Stack) (gorpn.Value, error) {
	v, err := stack.Pop()
	if err != nil {
		return nil, err
	}
	if !stack.IsEmpty() {
		return nil, gorpn.ErrExtra
	}
	return v, nil
}
