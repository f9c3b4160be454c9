package gentests

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/vic/lambdacalc/pkg/lambda"
)

// Normalize renames bound variables to x0, x1, ... in binding order so that
// α-equivalent terms print identically. Binders are told apart by id, so the
// term should have been α-renamed or reduced first. Free variables keep
// their names.
func Normalize(t lambda.Term) lambda.Term {
	type binder struct {
		name string
		id   int
	}
	bindings := make(map[binder]string)
	var idx int
	var walk func(lambda.Term) lambda.Term
	walk = func(tt lambda.Term) lambda.Term {
		switch v := tt.(type) {
		case lambda.Var:
			if name, ok := bindings[binder{v.Name, v.ID}]; ok {
				return lambda.Var{Name: name}
			}
			return lambda.Var{Name: v.Name}
		case lambda.Abs:
			canon := fmt.Sprintf("x%d", idx)
			idx++
			key := binder{v.Arg, v.ID}
			// shadowing: save old if any
			old, had := bindings[key]
			bindings[key] = canon
			body := walk(v.Body)
			if had {
				bindings[key] = old
			} else {
				delete(bindings, key)
			}
			return lambda.Abs{Arg: canon, Body: body}
		case lambda.App:
			return lambda.App{Fun: walk(v.Fun), Arg: walk(v.Arg)}
		default:
			return tt
		}
	}
	return walk(t)
}

func CheckLambdaReduction(t *testing.T, testName string, inputStr string, outputStr string) {
	expectedOutput := strings.TrimSpace(outputStr)

	expectedTerm, err := lambda.Parse(expectedOutput)
	if err != nil {
		t.Fatalf("Parse error for expected output: %v", err)
	}

	term, err := lambda.Parse(strings.TrimSpace(inputStr))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	r := lambda.NewReducer(lambda.BetaEta)
	start := time.Now()
	actualTerm := r.Reduce(term)
	elapsed := time.Since(start)

	normExpected := Normalize(lambda.AlphaRename(expectedTerm))
	normActual := Normalize(actualTerm)

	if normActual.String() != normExpected.String() {
		t.Errorf("Mismatch in %s:\nInput: %s\nExpected: %s\nActual:   %s", testName, inputStr, normExpected, normActual)
	}

	stats := r.GetStats()
	t.Logf("%s: %d reductions in %d passes, %v", testName, stats.TotalReductions, stats.BetaPasses+stats.EtaPasses, elapsed)
}
