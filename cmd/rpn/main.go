package main

import (
	"flag"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/npillmayer/gorpn"
	"github.com/npillmayer/gorpn/interp"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// main() starts an interactive CLI, where users may enter RPN expressions.
// Every line is evaluated and its result printed.
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	keep := flag.Bool("keep", false, "Keep results on the stack between lines")
	seed := flag.Int64("seed", 0, "Seed for random numbers (0 = from clock)")
	flag.Parse()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	tracing.Select("gorpn.core").SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	tracing.Select("gorpn.scanner").SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	//
	// set up the interpreter
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	tracer().Infof("Random seed is %d", *seed)
	intp, err := interp.New(
		interp.KeepStack(*keep),
		interp.WithRandom(rand.New(rand.NewSource(*seed))),
	)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	p := printer{}
	//
	// evaluate a one-shot expression from the command line
	if input := strings.TrimSpace(strings.Join(flag.Args(), " ")); input != "" {
		tracer().Infof("Input argument is \"%s\"", input)
		v, err := intp.Eval(input)
		if err != nil {
			if gorpn.Kind(err) == gorpn.KindQuit {
				return
			}
			p.Error(err)
			os.Exit(2)
		}
		p.Result(v)
		return
	}
	//
	// set up REPL
	repl, err := readline.New("> ")
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	pterm.Success.Println("Welcome to RPN, quit with <ctrl>D")
	if err := intp.Loop(lineReader{repl}, p); err != nil {
		p.Error(err)
		repl.Close()
		os.Exit(1)
	}
	pterm.Println("Good bye!")
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "Reply>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// lineReader adapts readline to the interpreter loop. Interrupting a line
// with <ctrl>C discards it.
type lineReader struct {
	repl *readline.Instance
}

func (lr lineReader) Readline() (string, error) {
	line, err := lr.repl.Readline()
	if err == readline.ErrInterrupt {
		return "", nil
	}
	return line, err
}

// printer reports results and errors on the terminal.
type printer struct{}

func (printer) Result(v gorpn.Value) {
	pterm.Info.Println(v.String())
}

func (printer) Error(err error) {
	pterm.Error.Printf("%s: %v\n", gorpn.Kind(err), err)
}
