package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/zephyrtronium/arith"
	"github.com/zephyrtronium/arith/internal/exprgen"
)

func main() {
	var (
		inname, verb               string
		nl, echo, post, trace, dbg bool
		prec                       uint
		gen, terms                 int
		seed                       int64
		exprs                      []string
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.Func("e", "expression to evaluate (any number of times)", addexpr(&exprs))
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.UintVar(&prec, "p", 0, "precision of calculations in bits (0 for float64)")
	flag.BoolVar(&nl, "n", false, "treat separate input lines as separate expressions")
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.BoolVar(&post, "postfix", false, "print postfix forms")
	flag.BoolVar(&trace, "trace", false, "print each reduction step")
	flag.IntVar(&gen, "gen", 0, "generate and evaluate this many random expressions instead of reading input")
	flag.IntVar(&terms, "terms", 5, "numbers per generated expression")
	flag.Int64Var(&seed, "seed", 1, "seed for generated expressions")
	flag.BoolVar(&dbg, "v", false, "log each pipeline stage")
	flag.Parse()

	lvl := slog.LevelInfo
	if dbg {
		lvl = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	var srcs []string
	if gen > 0 {
		if terms < 1 {
			log.Error("terms must be positive", slog.Int("terms", terms))
			os.Exit(1)
		}
		g := exprgen.New(seed)
		for i := 0; i < gen; i++ {
			srcs = append(srcs, g.Generate(terms))
		}
	} else {
		in, err := inputs(inname, flag.NArg() == 0 && len(exprs) == 0, nl)
		if err != nil {
			log.Error("reading input", slog.String("error", err.Error()))
			os.Exit(1)
		}
		srcs = append(in, exprs...)
		srcs = append(srcs, flag.Args()...)
	}

	verb += "\n"
	p := printer{log: log, verb: verb, prec: prec, echo: echo || gen > 0, post: post, trace: trace}
	failed := false
	for _, src := range srcs {
		if !p.run(os.Stdout, src) {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

// addexpr returns a flag function that appends each expression to dst.
func addexpr(dst *[]string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New("expression is empty")
		}
		*dst = append(*dst, s)
		return nil
	}
}

type printer struct {
	log               *slog.Logger
	verb              string
	prec              uint
	echo, post, trace bool
}

// run evaluates one expression and prints the requested forms and its value
// to w. Errors go to the log instead, and nothing is written to w for an
// expression that fails. It reports whether evaluation succeeded.
func (p *printer) run(w io.Writer, src string) bool {
	toks, err := arith.Tokenize(src)
	if err != nil {
		return p.fail(src, err)
	}
	p.log.Debug("tokens", slog.String("expr", src), slog.String("tokens", arith.Format(toks)))
	postfix, err := arith.ToPostfix(toks)
	if err != nil {
		return p.fail(src, err)
	}
	p.log.Debug("postfix", slog.String("expr", src), slog.String("postfix", arith.Format(postfix)))
	tree, err := arith.BuildTree(postfix)
	if err != nil {
		return p.fail(src, err)
	}
	p.log.Debug("tree", slog.String("expr", src), slog.String("tree", tree.String()))

	var b strings.Builder
	if p.echo {
		fmt.Fprintf(&b, "%v : ", tree)
	}
	if p.post {
		fmt.Fprintf(&b, "[%s] ", arith.Format(postfix))
	}
	if p.trace {
		_, steps, err := tree.Trace()
		if err != nil {
			return p.fail(src, err)
		}
		fmt.Fprintln(&b)
		for _, s := range steps {
			fmt.Fprintf(&b, "\t%g %v %g = %g\t%s\n", s.Left, s.Op, s.Right, s.Result, s.Tree)
		}
	}
	if p.prec > 0 {
		r, err := tree.EvalFloat(p.prec)
		if err != nil {
			return p.fail(src, err)
		}
		fmt.Fprintf(&b, p.verb, r)
	} else {
		r, err := tree.Eval()
		if err != nil {
			return p.fail(src, err)
		}
		fmt.Fprintf(&b, p.verb, r)
	}
	io.WriteString(w, b.String())
	return true
}

func (p *printer) fail(src string, err error) bool {
	p.log.Error("evaluation failed",
		slog.String("expr", src),
		slog.Bool("input", arith.IsInputError(err)),
		slog.String("error", err.Error()),
	)
	return false
}

// inputs reads the expressions from the named file, or from stdin if the
// name is "-" or std is true and no name is given. If nl is true, each
// non-blank line is a separate expression; otherwise the whole input is one.
func inputs(inname string, std, nl bool) ([]string, error) {
	var f *os.File
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		defer in.Close()
		f = in
	case inname == "-", std:
		f = os.Stdin
	}
	if f == nil {
		return nil, nil
	}
	if !nl {
		b, err := io.ReadAll(f)
		if err != nil {
			return nil, err
		}
		return []string{string(b)}, nil
	}
	var r []string
	scan := bufio.NewScanner(f)
	for scan.Scan() {
		if strings.TrimSpace(scan.Text()) == "" {
			continue
		}
		r = append(r, scan.Text())
	}
	return r, scan.Err()
}
