package gentests

import (
	"testing"

	"github.com/vic/lambdacalc/pkg/lambda"
)

func TestNormalizeAlphaEquivalent(t *testing.T) {
	a, _ := lambda.Parse(`\x y.x y z`)
	b, _ := lambda.Parse(`\p q.p q z`)

	na := Normalize(lambda.AlphaRename(a)).String()
	nb := Normalize(lambda.AlphaRename(b)).String()
	if na != nb {
		t.Errorf("%s != %s", na, nb)
	}
	if want := "(λx0.(λx1.((x0 x1) z)))"; na != want {
		t.Errorf("got %s, want %s", na, want)
	}
}

// TestNormalizeUsesIDs checks that two binders sharing a name but not an id
// are kept apart.
func TestNormalizeUsesIDs(t *testing.T) {
	term := lambda.Abs{Arg: "y", ID: 1, Body: lambda.Abs{Arg: "y", ID: 2, Body: lambda.Var{Name: "y", ID: 1}}}
	if got := Normalize(term).String(); got != "(λx0.(λx1.x0))" {
		t.Errorf("got %s", got)
	}
}

func TestCheckLambdaReduction(t *testing.T) {
	CheckLambdaReduction(t, "inline", `(\x.x) a`, "a\n")
}
