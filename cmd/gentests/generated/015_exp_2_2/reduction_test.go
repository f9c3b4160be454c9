package gentests

import _ "embed"
import "testing"
import "github.com/vic/lambdacalc/cmd/gentests/helper"

//go:embed input.lam
var input string

//go:embed output.lam
var output string

func Test_015_exp_2_2_Reduction(t *testing.T) {
	gentests.CheckLambdaReduction(t, "015_exp_2_2", input, output)
}
