package main

import (
	"fmt"

	"github.com/xyproto/env/v2"

	"github.com/vic/lambdacalc/pkg/lambda"
)

const defaultTraceSize = 64

type config struct {
	// Debug is the log verbosity: 1 logs the parsed input and stats, 2 also
	// logs the term after every pass, 3 dumps the trace buffer at the end.
	Debug    int
	Strategy lambda.Strategy
	// TraceSize is how many trace events are kept for the dump.
	TraceSize int
}

func loadConfig() (config, error) {
	cfg := config{
		Debug:     env.Int("LAMBDA_DEBUG", 0),
		TraceSize: env.Int("LAMBDA_TRACE", defaultTraceSize),
	}
	if cfg.TraceSize < 1 {
		return cfg, fmt.Errorf("LAMBDA_TRACE must be positive, got %d", cfg.TraceSize)
	}

	strategy, err := parseStrategy(env.Str("LAMBDA_STRATEGY", lambda.BetaEta.String()))
	if err != nil {
		return cfg, err
	}
	cfg.Strategy = strategy

	return cfg, nil
}

func parseStrategy(name string) (lambda.Strategy, error) {
	for _, s := range []lambda.Strategy{lambda.BetaEta, lambda.BetaOnly} {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown LAMBDA_STRATEGY %q (want %q or %q)", name, lambda.BetaEta, lambda.BetaOnly)
}
