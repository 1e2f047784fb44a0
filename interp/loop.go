package interp

import (
	"io"
	"strings"

	"github.com/npillmayer/gorpn"
)

// LineReader reads lines of input. *readline.Instance is a LineReader.
// Readline has to return io.EOF at the end of input.
type LineReader interface {
	Readline() (string, error)
}

// Printer receives the outcome of evaluating a line.
type Printer interface {
	Result(gorpn.Value)
	Error(error)
}

// Loop reads lines from in, evaluates them and reports results and errors to
// out, until the session ends.
//
// Calculator errors (Empty, Extra, Type, Syntax) are reported and the loop
// continues with the next line. The session ends normally, with a nil return
// value, on token "quit" or at the end of input. A failure to read input ends
// the session with an error of kind gorpn.KindIO.
func (intp *Interpreter) Loop(in LineReader, out Printer) error {
	for {
		line, err := in.Readline()
		if err == io.EOF {
			tracer().Infof("end of input")
			return nil
		} else if err != nil {
			return gorpn.WrapIO(err)
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		v, err := intp.Eval(line)
		switch gorpn.Kind(err) {
		case gorpn.KindQuit:
			tracer().Infof("quit")
			return nil
		case gorpn.KindIO:
			return err
		}
		if err != nil {
			out.Error(err)
			continue
		}
		out.Result(v)
	}
}
