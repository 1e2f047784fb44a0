/*
Package gorpn is a small calculator engine for expressions in Reverse Polish
Notation (RPN).

Expressions operate on a single operand stack. Operands are typed: a value
is either a 32-bit integer or a boolean. Operators pop their operands from the
stack and push their result, e.g.

    3 4 +          ⇒  Int(7)
    true 10 20 ?   ⇒  Int(10)

Package structure is as follows:

■ gorpn: the value model, the operand stack and the operator evaluator.

■ scanner: a tokenizer for lines of RPN input, based on lexmachine.

■ interp: a line interpreter, dispatching tokens to stack operations.

■ cmd/rpn: an interactive command line tool (REPL).

Evaluation of an operator is a two-phase affair: first the operator checks if
enough operands are present (without touching the stack), then it pops its
operands and checks their types. A type error will therefore consume the
operands of the failing operator.

Integer addition wraps around on overflow, following Go's native int32
arithmetic.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gorpn

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gorpn.core'.
func tracer() tracing.Trace {
	return tracing.Select("gorpn.core")
}
