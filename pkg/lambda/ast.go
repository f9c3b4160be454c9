package lambda

import (
	"fmt"
	"maps"
)

// Term represents a lambda calculus term.
//
// The set of variants is closed: Empty, Var, App and Abs. Terms are values
// and are never mutated after construction; every rewrite builds a new term.
type Term interface {
	String() string
	// Repr renders the term as a Go literal, including binder ids.
	Repr() string
	term()
}

// Empty is the result of parsing nothing: an empty program or an empty
// lambda body.
type Empty struct{}

func (Empty) String() string { return "" }
func (Empty) Repr() string   { return "lambda.Empty{}" }
func (Empty) term()          {}

// Var represents a variable usage.
// ID is 0 for free variables and for terms that have not been α-renamed.
type Var struct {
	Name string
	ID   int
}

func (v Var) String() string {
	return v.Name
}

func (v Var) Repr() string {
	return fmt.Sprintf("lambda.Var{Name: %q, ID: %d}", v.Name, v.ID)
}

func (Var) term() {}

// Abs represents an abstraction (lambda).
type Abs struct {
	Arg  string
	ID   int
	Body Term
}

func (a Abs) String() string {
	return fmt.Sprintf("(λ%s.%s)", a.Arg, a.Body)
}

func (a Abs) Repr() string {
	return fmt.Sprintf("lambda.Abs{Arg: %q, ID: %d, Body: %s}", a.Arg, a.ID, a.Body.Repr())
}

func (Abs) term() {}

// App represents an application.
type App struct {
	Fun Term
	Arg Term
}

func (a App) String() string {
	return fmt.Sprintf("(%s %s)", a.Fun, a.Arg)
}

func (a App) Repr() string {
	return fmt.Sprintf("lambda.App{Fun: %s, Arg: %s}", a.Fun.Repr(), a.Arg.Repr())
}

func (App) term() {}

// Equal reports whether a and b are syntactically identical, ids included.
func Equal(a, b Term) bool {
	switch x := a.(type) {
	case Empty:
		_, ok := b.(Empty)
		return ok
	case Var:
		y, ok := b.(Var)
		return ok && x.Name == y.Name && x.ID == y.ID
	case App:
		y, ok := b.(App)
		return ok && Equal(x.Fun, y.Fun) && Equal(x.Arg, y.Arg)
	case Abs:
		y, ok := b.(Abs)
		return ok && x.Arg == y.Arg && x.ID == y.ID && Equal(x.Body, y.Body)
	default:
		return a == nil && b == nil
	}
}

// Canonical re-numbers the binders of t 1, 2, ... outside-in, left to
// right, keeping every variable attached to the binder it referred to.
// Terms that differ only in their binder ids have equal canonical forms.
func Canonical(t Term) Term {
	res, _ := renumber(t, 1, nil)
	return res
}

type binder struct {
	name string
	id   int
}

// renumber gives the binders of t consecutive ids from next and returns the
// next unused id. env maps the binders of enclosing abstractions to their new
// ids; variables not found in env are left alone.
func renumber(t Term, next int, env map[binder]int) (Term, int) {
	switch v := t.(type) {
	case Var:
		if id, ok := env[binder{v.Name, v.ID}]; ok {
			return Var{Name: v.Name, ID: id}, next
		}
		return v, next
	case App:
		fun, n := renumber(v.Fun, next, env)
		arg, n := renumber(v.Arg, n, env)
		return App{Fun: fun, Arg: arg}, n
	case Abs:
		inner := make(map[binder]int, len(env)+1)
		maps.Copy(inner, env)
		inner[binder{v.Arg, v.ID}] = next
		body, n := renumber(v.Body, next+1, inner)
		return Abs{Arg: v.Arg, ID: next, Body: body}, n
	default:
		return t, next
	}
}

// maxID returns the largest binder id in t, or 0 if t has no binders.
func maxID(t Term) int {
	switch v := t.(type) {
	case App:
		return max(maxID(v.Fun), maxID(v.Arg))
	case Abs:
		return max(v.ID, maxID(v.Body))
	default:
		return 0
	}
}
