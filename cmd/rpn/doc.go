/*
Command rpn is an interactive calculator for expressions in Reverse Polish
Notation.

Enter one expression per line; rpn prints the single value the expression
leaves on the stack:

    > 3 4 +
      Reply> Int(7)
    > true 10 20 ?
      Reply> Int(10)

Quit with "quit" or <ctrl>D. An expression given as command line arguments
is evaluated once, without starting an interactive session.

Flags:

    -trace  Debug|Info|Error   trace level
    -keep                      keep results on the stack between lines
    -seed   n                  seed for operator #; 0 seeds from the clock

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gorpn.interp'
func tracer() tracing.Trace {
	return tracing.Select("gorpn.interp")
}
