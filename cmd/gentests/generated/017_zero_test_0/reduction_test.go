package gentests

import _ "embed"
import "testing"
import "github.com/vic/lambdacalc/cmd/gentests/helper"

//go:embed input.lam
var input string

//go:embed output.lam
var output string

func Test_017_zero_test_0_Reduction(t *testing.T) {
	gentests.CheckLambdaReduction(t, "017_zero_test_0", input, output)
}
