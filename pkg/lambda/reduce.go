package lambda

// AlphaRename gives every abstraction a distinct positive id and tags the
// variables it binds with the same id. Free variables keep id 0.
//
// Names are left untouched; only ids change.
func AlphaRename(t Term) Term {
	res, _ := alphaRename(t, 1)
	return res
}

// alphaRename numbers binders from n outside-in, left to right, and returns
// the next unused id.
func alphaRename(t Term, n int) (Term, int) {
	switch v := t.(type) {
	case Abs:
		body, next := alphaRename(bind(v.Body, v.Arg, n), n+1)
		return Abs{Arg: v.Arg, ID: n, Body: body}, next
	case App:
		fun, next := alphaRename(v.Fun, n)
		arg, next := alphaRename(v.Arg, next)
		return App{Fun: fun, Arg: arg}, next
	default:
		return t, n
	}
}

// bind sets the id of every occurrence of name in t that is not shadowed by
// a nested abstraction of the same name.
func bind(t Term, name string, id int) Term {
	switch v := t.(type) {
	case Var:
		if v.Name == name {
			return Var{Name: name, ID: id}
		}
		return v
	case App:
		return App{Fun: bind(v.Fun, name, id), Arg: bind(v.Arg, name, id)}
	case Abs:
		if v.Arg == name {
			return v
		}
		return Abs{Arg: v.Arg, ID: v.ID, Body: bind(v.Body, name, id)}
	default:
		return t
	}
}

// BetaReduce performs one β pass over t. Each redex (λx.e) a met on the way
// down is contracted to e with the occurrences of x replaced by copies of a;
// e itself is reduced first, a is not. Redexes created by the pass are left
// for the next one.
//
// Every copy of a gets binder ids above those already in t, so a copy never
// answers to a substitution aimed at another.
func BetaReduce(t Term) Term {
	p := betaPass{next: maxID(t) + 1}
	return p.reduce(t)
}

// betaPass carries the state of one β pass.
type betaPass struct {
	next int // next unused binder id
	n    int // contractions so far
}

func (p *betaPass) reduce(t Term) Term {
	switch v := t.(type) {
	case App:
		if abs, ok := v.Fun.(Abs); ok {
			body := p.reduce(abs.Body)
			p.n++
			return p.subst(body, abs.Arg, abs.ID, v.Arg)
		}
		return App{Fun: p.reduce(v.Fun), Arg: p.reduce(v.Arg)}
	case Abs:
		return Abs{Arg: v.Arg, ID: v.ID, Body: p.reduce(v.Body)}
	default:
		return t
	}
}

// subst replaces every Var{name, id} in t with a copy of val whose binders
// are re-numbered from p.next. Binders are matched by id as well as name, so
// shadowing needs no special case once the term has been α-renamed.
func (p *betaPass) subst(t Term, name string, id int, val Term) Term {
	switch v := t.(type) {
	case Var:
		if v.Name == name && v.ID == id {
			var cp Term
			cp, p.next = renumber(val, p.next, nil)
			return cp
		}
		return v
	case App:
		return App{Fun: p.subst(v.Fun, name, id, val), Arg: p.subst(v.Arg, name, id, val)}
	case Abs:
		return Abs{Arg: v.Arg, ID: v.ID, Body: p.subst(v.Body, name, id, val)}
	default:
		return t
	}
}

// EtaConvert performs one η pass over t, rewriting λx.(f x) to f.
//
// The rewrite does not check that x is free in f, so λx.(x x) becomes x.
// This is a known defect that callers rely on being reproduced.
func EtaConvert(t Term) Term {
	res, _ := etaConvert(t)
	return res
}

func etaConvert(t Term) (Term, int) {
	switch v := t.(type) {
	case Abs:
		if app, ok := v.Body.(App); ok {
			if x, ok := app.Arg.(Var); ok && x.Name == v.Arg && x.ID == v.ID {
				return app.Fun, 1
			}
		}
		body, n := etaConvert(v.Body)
		return Abs{Arg: v.Arg, ID: v.ID, Body: body}, n
	case App:
		fun, nf := etaConvert(v.Fun)
		arg, na := etaConvert(v.Arg)
		return App{Fun: fun, Arg: arg}, nf + na
	default:
		return t, 0
	}
}

// Strategy selects when Reduce stops.
type Strategy int

const (
	// BetaEta runs β passes to a fixpoint, then one η pass, and repeats
	// until neither changes the term.
	BetaEta Strategy = iota
	// BetaOnly stops at the first β fixpoint.
	BetaOnly
)

func (s Strategy) String() string {
	switch s {
	case BetaEta:
		return "beta-eta"
	case BetaOnly:
		return "beta"
	default:
		return "unknown"
	}
}

// Stats counts the work done by a Reducer.
type Stats struct {
	BetaPasses      uint64
	EtaPasses       uint64
	BetaReductions  uint64
	EtaReductions   uint64
	TotalReductions uint64
}

// Reducer drives a term to normal form.
type Reducer struct {
	strategy Strategy
	stats    Stats
	onStep   func(TraceEvent)

	step     uint64
	traceOn  bool
	traceBuf []TraceEvent
	traceIdx uint64
}

func NewReducer(strategy Strategy) *Reducer {
	return &Reducer{strategy: strategy}
}

// OnStep registers fn to receive every trace event as it happens, whether or
// not tracing into the buffer is enabled.
func (r *Reducer) OnStep(fn func(TraceEvent)) {
	r.onStep = fn
}

func (r *Reducer) GetStats() Stats {
	return r.stats
}

// Reduce α-renames t once and then rewrites it until it stops changing.
// Progress is judged up to binder ids, since every β pass hands out new ones.
// The result is returned in Canonical form, so reducing it again gives back
// an equal term.
//
// Reduce does not return for terms without a normal form, such as Y applied
// to anything.
func (r *Reducer) Reduce(t Term) Term {
	curr, next := alphaRename(t, 1)
	r.record(PassAlpha, curr)

	for {
		prev := curr
		beta := betaPass{next: next}
		curr = beta.reduce(curr)
		next = beta.next
		r.stats.BetaPasses++
		r.stats.BetaReductions += uint64(beta.n)
		r.stats.TotalReductions += uint64(beta.n)
		r.record(PassBeta, curr)
		if !alphaEqual(prev, curr) {
			continue
		}
		if r.strategy == BetaOnly {
			break
		}

		var n int
		curr, n = etaConvert(curr)
		r.stats.EtaPasses++
		r.stats.EtaReductions += uint64(n)
		r.stats.TotalReductions += uint64(n)
		r.record(PassEta, curr)
		if alphaEqual(prev, curr) {
			break
		}
	}

	curr = Canonical(curr)
	r.record(PassDone, curr)
	return curr
}

func alphaEqual(a, b Term) bool {
	return Equal(Canonical(a), Canonical(b))
}

// Reduce reduces t with the BetaEta strategy.
func Reduce(t Term) Term {
	return NewReducer(BetaEta).Reduce(t)
}
