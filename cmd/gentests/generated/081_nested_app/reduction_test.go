package gentests

import _ "embed"
import "testing"
import "github.com/vic/lambdacalc/cmd/gentests/helper"

//go:embed input.lam
var input string

//go:embed output.lam
var output string

func Test_081_nested_app_Reduction(t *testing.T) {
	gentests.CheckLambdaReduction(t, "081_nested_app", input, output)
}
