package gentests

import _ "embed"
import "testing"
import "github.com/vic/lambdacalc/cmd/gentests/helper"

//go:embed input.lam
var input string

//go:embed output.lam
var output string

func Test_100_mixed_1_Reduction(t *testing.T) {
	gentests.CheckLambdaReduction(t, "100_mixed_1", input, output)
}
