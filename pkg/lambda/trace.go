package lambda

// Pass identifies the rewrite that produced a traced term.
type Pass int

const (
	PassAlpha Pass = iota
	PassBeta
	PassEta
	PassDone
)

func (p Pass) String() string {
	switch p {
	case PassAlpha:
		return "alpha"
	case PassBeta:
		return "beta"
	case PassEta:
		return "eta"
	case PassDone:
		return "done"
	default:
		return "unknown"
	}
}

type TraceEvent struct {
	Step uint64
	Pass Pass
	Term Term
}

// EnableTrace keeps the first capacity events of subsequent reductions.
func (r *Reducer) EnableTrace(capacity int) {
	if capacity <= 0 {
		capacity = 1
	}
	r.traceBuf = make([]TraceEvent, capacity)
	r.traceIdx = 0
	r.traceOn = true
}

func (r *Reducer) DisableTrace() {
	r.traceOn = false
}

func (r *Reducer) TraceSnapshot() []TraceEvent {
	if !r.traceOn {
		return nil
	}
	count := min(r.traceIdx, uint64(len(r.traceBuf)))
	res := make([]TraceEvent, count)
	copy(res, r.traceBuf[:count])
	return res
}

func (r *Reducer) record(pass Pass, t Term) {
	ev := TraceEvent{Step: r.step, Pass: pass, Term: t}
	r.step++
	if r.onStep != nil {
		r.onStep(ev)
	}
	if !r.traceOn {
		return
	}
	if r.traceIdx < uint64(len(r.traceBuf)) {
		r.traceBuf[r.traceIdx] = ev
	}
	r.traceIdx++
}
