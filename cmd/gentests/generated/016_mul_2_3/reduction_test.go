package gentests

import _ "embed"
import "testing"
import "github.com/vic/lambdacalc/cmd/gentests/helper"

//go:embed input.lam
var input string

//go:embed output.lam
var output string

func Test_016_mul_2_3_Reduction(t *testing.T) {
	gentests.CheckLambdaReduction(t, "016_mul_2_3", input, output)
}
