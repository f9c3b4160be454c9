package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/samber/lo"

	"github.com/vic/lambdacalc/pkg/lambda"
)

type TestCase struct {
	Name   string
	Input  string
	Output string
}

const testTemplate = `package gentests

import _ "embed"
import "testing"
import "github.com/vic/lambdacalc/cmd/gentests/helper"

//go:embed input.lam
var input string

//go:embed output.lam
var output string

func Test_%s_Reduction(t *testing.T) {
	gentests.CheckLambdaReduction(t, "%s", input, output)
}
`

var tests = []TestCase{
	// Identity
	{"001_id", `\x.x`, `\y.y`},
	{"002_id_id", `(\x.x) (\y.y)`, `\z.z`},

	// K Combinator (Erasure)
	{"003_k_1", `(\x y.x) a b`, "a"},
	{"004_k_2", `(\x y.y) a b`, "b"},
	{"005_erase_complex", `(\x y.x) a ((\z.z) b)`, "a"},

	// S Combinator (Sharing)
	{"006_s_1", `(\x y z.x z (y z)) (\a b.a) (\c d.c) e`, "e"},
	{"007_s_2", `(\x y z.x z (y z)) (\a b.b) (\c d.c) e`, `\d.e`},

	// Church Numerals
	{"010_zero", "0 f x", "x"},
	{"011_one", "1 f x", "f x"},
	{"012_two", "2 f x", "f (f x)"},
	{"013_succ_0", "S 0 f x", "f x"},
	{"014_succ_1", "S 1 f x", "f (f x)"},
	{"015_exp_2_2", "2 2 f x", "f (f (f (f x)))"},
	{"016_mul_2_3", "* 2 3 f x", "f (f (f (f (f (f x)))))"},
	{"017_zero_test_0", "Z 0 a b", "a"},
	{"018_zero_test_2", "Z 2 a b", "b"},

	// Logic
	{"020_true", "T a b", "a"},
	{"021_false", "F a b", "b"},
	{"022_not_true", "! T a b", "b"},
	{"023_not_false", "! F a b", "a"},
	{"024_and_true_true", "& T T a b", "a"},
	{"025_and_true_false", "& T F a b", "b"},
	{"026_or_false_true", "| F T a b", "a"},

	// Pairs
	{"030_pair_fst", `(\p.p (\x y.x)) ((\x y f.f x y) a b)`, "a"},
	{"031_pair_snd", `(\p.p (\x y.y)) ((\x y f.f x y) a b)`, "b"},

	// Sharing
	{"051_share_app", `(\f.f (f x)) (\y.y)`, "x"},
	{"070_share_complex", `(\x.x (x a)) (\y.y)`, "a"},
	{"071_erase_shared", `(\x y.y) ((\z.z) a) b`, "b"},

	// Nested Lambdas
	{"081_nested_app", `(\x y.x y) a b`, "a b"},

	// Free variables
	{"090_free_1", "x", "x"},
	{"091_free_app", "x y", "x y"},

	// Mixed
	{"100_mixed_1", `(\x.x) ((\y.y) a)`, "a"},

	// Eta
	{"110_eta", `\x.f x`, "f"},
	{"111_eta_after_beta", `(\f x.f x) g`, "g"},
}

func main() {
	baseDir := "cmd/gentests/generated"
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", baseDir, err)
		os.Exit(1)
	}

	valid := lo.Filter(tests, func(tc TestCase, _ int) bool {
		if _, err := lambda.Parse(tc.Input); err != nil {
			fmt.Printf("Error parsing input for %s: %v\n", tc.Name, err)
			return false
		}
		if _, err := lambda.Parse(tc.Output); err != nil {
			fmt.Printf("Error parsing output for %s: %v\n", tc.Name, err)
			return false
		}
		return true
	})

	for _, tc := range valid {
		dir := filepath.Join(baseDir, tc.Name)
		files := map[string]string{
			"input.lam":         tc.Input + "\n",
			"output.lam":        tc.Output + "\n",
			"reduction_test.go": fmt.Sprintf(testTemplate, tc.Name, tc.Name),
		}
		if err := writeCase(dir, files); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", tc.Name, err)
			os.Exit(1)
		}
	}

	fmt.Printf("Generated %d tests\n", len(valid))
}

func writeCase(dir string, files map[string]string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			return err
		}
	}
	return nil
}
