package gentests

import (
	_ "embed"
	"testing"

	"github.com/vic/lambdacalc/cmd/gentests/helper"
	"github.com/vic/lambdacalc/pkg/lambda"
)

//go:embed input.lam
var input string

//go:embed output.lam
var output string

// Test_103_strategies checks that both reduction strategies reach the same
// normal form when that normal form contains no η-redex.
func Test_103_strategies(t *testing.T) {
	gentests.CheckLambdaReduction(t, "103_strategies", input, output)

	term, err := lambda.Parse(input)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	withEta := lambda.NewReducer(lambda.BetaEta)
	betaOnly := lambda.NewReducer(lambda.BetaOnly)
	a := withEta.Reduce(term)
	b := betaOnly.Reduce(term)

	if !lambda.Equal(a, b) {
		t.Errorf("strategies disagree:\nbeta-eta: %s\nbeta:     %s", a.Repr(), b.Repr())
	}

	sa, sb := withEta.GetStats(), betaOnly.GetStats()
	if sa.BetaReductions != sb.BetaReductions {
		t.Errorf("beta reductions differ: %d vs %d", sa.BetaReductions, sb.BetaReductions)
	}
	if sa.EtaReductions != 0 || sb.EtaPasses != 0 {
		t.Errorf("unexpected eta work: %+v / %+v", sa, sb)
	}
	t.Logf("beta-eta: %+v", sa)
	t.Logf("beta:     %+v", sb)
}
