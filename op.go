package gorpn

import "fmt"

// Op is an operator of the calculator. Operators carry no data; they take
// their operands from the stack.
type Op int8

// Operators of the calculator.
const (
	Add  Op = iota // a b +      ⇒ a+b
	Eq             // a b =      ⇒ a==b
	Neg            // a !        ⇒ ¬a
	Swap           // a b <->    ⇒ b a
	Rand           // n #        ⇒ random in [0,n)
	Cond           // c a b ?    ⇒ a if c else b
	Quit           // end the session
)

var opNames = [...]string{"Add", "Eq", "Neg", "Swap", "Rand", "Cond", "Quit"}
var opSymbols = [...]string{"+", "=", "!", "<->", "#", "?", "quit"}
var opArity = [...]int{2, 2, 1, 2, 1, 3, 0}

func (op Op) valid() bool {
	return op >= Add && op <= Quit
}

func (op Op) String() string {
	if !op.valid() {
		return fmt.Sprintf("Op(%d)", int8(op))
	}
	return opNames[op]
}

// Symbol returns the input symbol of an operator, e.g. "<->" for Swap.
func (op Op) Symbol() string {
	if !op.valid() {
		return ""
	}
	return opSymbols[op]
}

// Arity returns the number of operands an operator consumes.
func (op Op) Arity() int {
	if !op.valid() {
		return 0
	}
	return opArity[op]
}

// OpFromSymbol finds the operator for an input symbol.
func OpFromSymbol(sym string) (Op, bool) {
	for i, s := range opSymbols {
		if s == sym {
			return Op(i), true
		}
	}
	return 0, false
}
