package gorpn

import (
	"math/rand"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// Stack is the operand stack of the calculator. A stack owns its values;
// it is not safe for concurrent use. Independent sessions should use
// independent stacks.
//
// The zero value is not usable, create stacks with New.
type Stack struct {
	values *arraystack.Stack
	rnd    *rand.Rand // source for Rand; nil selects the global source
}

// Option configures a stack.
type Option func(*Stack)

// WithRandom sets the random source for operator Rand. rand.Rand is not safe
// for concurrent use, so a source should not be shared between stacks used
// from different goroutines. Without this option, Rand uses the global
// source of package math/rand.
func WithRandom(r *rand.Rand) Option {
	return func(s *Stack) {
		s.rnd = r
	}
}

// New creates an empty stack.
func New(opts ...Option) *Stack {
	s := &Stack{values: arraystack.New()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IsEmpty is a predicate: does the stack hold no values?
func (s *Stack) IsEmpty() bool {
	return s.values.Empty()
}

// Size returns the number of values on the stack.
func (s *Stack) Size() int {
	return s.values.Size()
}

// Push puts a value on top of the stack. Push will never fail; the error
// return is there for symmetry with Pop.
func (s *Stack) Push(v Value) error {
	tracer().Debugf("push %v", v)
	s.values.Push(v)
	return nil
}

// Pop removes the top value from the stack and returns it.
// Will return ErrEmpty if the stack holds no values.
func (s *Stack) Pop() (Value, error) {
	v, ok := s.values.Pop()
	if !ok {
		return nil, ErrEmpty
	}
	tracer().Debugf("pop  %v", v)
	return v.(Value), nil
}

// Clear removes all values from the stack.
func (s *Stack) Clear() {
	s.values.Clear()
}

// Values returns a copy of the stack's values, bottom first.
func (s *Stack) Values() []Value {
	tos := s.values.Values() // LIFO order
	vals := make([]Value, len(tos))
	for i, v := range tos {
		vals[len(tos)-1-i] = v.(Value)
	}
	return vals
}

func (s *Stack) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range s.Values() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(v.String())
	}
	b.WriteByte(']')
	return b.String()
}

func (s *Stack) randomBelow(max Int) Int {
	if s.rnd != nil {
		return Int(s.rnd.Int31n(int32(max)))
	}
	return Int(rand.Int31n(int32(max)))
}
