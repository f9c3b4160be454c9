package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/vic/lambdacalc/internal/debug"
	"github.com/vic/lambdacalc/pkg/lambda"
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		fmt.Print(usage())
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	debug.SetLogger(log.New(os.Stderr, "", 0).Print)
	debug.SetLevel(cfg.Debug)

	input, err := readInput(os.Args[1:], os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, input, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Parse error: %v\n", err)
		os.Exit(1)
	}
}

func usage() string {
	var b strings.Builder
	b.WriteString("Usage: lambda [file]\n\n")
	b.WriteString("Reads a lambda term from file, or the first line of stdin, and prints its normal form.\n")
	b.WriteString(`Syntax: \x y.body or λx.body, application by juxtaposition, (grouping).` + "\n")
	fmt.Fprintf(&b, "Built-ins: %s and the numerals 0, 1, 2, ...\n\n", strings.Join(lambda.Builtins(), " "))
	b.WriteString("Environment:\n")
	b.WriteString("  LAMBDA_DEBUG     0 quiet, 1 input and stats, 2 every pass, 3 trace dump\n")
	fmt.Fprintf(&b, "  LAMBDA_STRATEGY  %s (default) or %s\n", lambda.BetaEta, lambda.BetaOnly)
	fmt.Fprintf(&b, "  LAMBDA_TRACE     events kept for the trace dump (default %d)\n", defaultTraceSize)
	return b.String()
}

// run parses input, reduces it and writes the normal form to out. The only
// error it returns is a parse error.
func run(cfg config, input string, out io.Writer) error {
	term, err := lambda.Parse(input)
	if err != nil {
		var perr *lambda.ParseError
		if errors.As(err, &perr) {
			debug.Logf(1, "Partial: %s", perr.Partial)
		}
		return err
	}

	debug.Logf(1, "Input: %s", term)
	debug.Logf(1, "Repr:  %s", term.Repr())

	r := lambda.NewReducer(cfg.Strategy)
	if debug.V(2) {
		r.OnStep(func(ev lambda.TraceEvent) {
			debug.Logf(2, "%-5s %4d: %s", ev.Pass, ev.Step, ev.Term)
		})
	}
	if debug.V(3) {
		r.EnableTrace(cfg.TraceSize)
	}

	start := time.Now()
	res := r.Reduce(term)
	elapsed := time.Since(start)

	fmt.Fprintln(out, res)

	for _, ev := range r.TraceSnapshot() {
		debug.Logf(3, "trace %4d %-5s %s", ev.Step, ev.Pass, ev.Term.Repr())
	}

	stats := r.GetStats()
	debug.Log(1, "Strategy: ", cfg.Strategy)
	debug.Log(1, "Time: ", elapsed)
	debug.Logf(1, "Passes: %d beta, %d eta", stats.BetaPasses, stats.EtaPasses)
	debug.Logf(1, "Reductions: %d (%d beta, %d eta)", stats.TotalReductions, stats.BetaReductions, stats.EtaReductions)
	return nil
}

// readInput returns the contents of the file named by args[0], or else the
// first line of stdin.
func readInput(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
