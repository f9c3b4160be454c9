package gentests

import _ "embed"
import "testing"
import "github.com/vic/lambdacalc/cmd/gentests/helper"

//go:embed input.lam
var input string

//go:embed output.lam
var output string

func Test_021_false_Reduction(t *testing.T) {
	gentests.CheckLambdaReduction(t, "021_false", input, output)
}
