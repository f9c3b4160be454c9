package lambda

import (
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Reserved identifiers and the closed terms they stand for.
var builtins = map[string]func() Term{
	// Booleans
	"T": churchTrue,
	"F": churchFalse,

	// Successor
	"S": func() Term {
		return lam("w y x", app(v("y"), app(v("w"), v("y"), v("x"))))
	},

	// Zero test: n F (λx.x F T) F
	"Z": func() Term {
		return lam("x", app(v("x"), churchFalse(), lam("x", app(v("x"), churchFalse(), churchTrue())), churchFalse()))
	},

	// Multiplication is composition.
	"*": func() Term {
		return lam("x y z", app(v("x"), app(v("y"), v("z"))))
	},

	// Logic
	"&": func() Term {
		return lam("x y", app(v("x"), v("y"), churchFalse()))
	},
	"|": func() Term {
		return lam("x y", app(v("x"), churchTrue(), v("y")))
	},
	"!": func() Term {
		return lam("x", app(v("x"), churchFalse(), churchTrue()))
	},

	// Fixed-point combinator
	"Y": func() Term {
		return lam("y", app(
			lam("x", app(v("y"), app(v("x"), v("x")))),
			lam("x", app(v("y"), app(v("x"), v("x")))),
		))
	},
}

// Builtin returns the expansion of a reserved identifier.
func Builtin(name string) (Term, bool) {
	mk, ok := builtins[name]
	if !ok {
		return nil, false
	}
	return mk(), true
}

// Builtins lists the reserved identifiers in sorted order.
func Builtins() []string {
	names := lo.Keys(builtins)
	slices.Sort(names)
	return names
}

// Numeral returns the Church numeral for n: λs.λz.s (s (... z)).
func Numeral(n uint64) Term {
	var body Term = v("z")
	for i := uint64(0); i < n; i++ {
		body = App{Fun: v("s"), Arg: body}
	}
	return lam("s z", body)
}

func parseNumeral(tok string) (uint64, bool) {
	if tok == "" || strings.TrimLeft(tok, "0123456789") != "" {
		return 0, false
	}
	n, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func churchTrue() Term  { return lam("x y", v("x")) }
func churchFalse() Term { return lam("x y", v("y")) }

func v(name string) Term { return Var{Name: name} }

// lam abstracts body over the space separated params.
func lam(params string, body Term) Term {
	return abstract(strings.Fields(params), body)
}

// app applies terms left-associatively.
func app(fun Term, args ...Term) Term {
	return lo.Reduce(args, func(acc Term, arg Term, _ int) Term {
		return App{Fun: acc, Arg: arg}
	}, fun)
}
