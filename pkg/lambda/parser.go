package lambda

import (
	"fmt"

	"github.com/samber/lo"
)

const (
	msgUnexpectedDot   = "unexpected '.'"
	msgUnexpectedParen = "unexpected ')'"
)

// ParseError reports a parse failure together with the best partial term
// recovered before the failure point.
type ParseError struct {
	Msg     string
	Partial Term
}

func (e *ParseError) Error() string {
	return e.Msg
}

// within places the partial term of e after the atoms already parsed by the
// enclosing expression.
func (e *ParseError) within(res Term) *ParseError {
	return &ParseError{Msg: e.Msg, Partial: apply(res, e.Partial)}
}

// Parse parses a lambda term from a string.
//
// On failure the returned error is a *ParseError and the returned term is
// its partial result.
func Parse(input string) (Term, error) {
	return ParseTokens(NewTokens(Tokenize(input)))
}

// ParseTokens parses a single expression from toks, consuming it to the end.
func ParseTokens(toks *Tokens) (Term, error) {
	term, perr := parseExpr(toks)
	if perr != nil {
		return perr.Partial, perr
	}
	return term, nil
}

// expr ::= atom+
// atom ::= lambda | group | CONST | IDENT
//
// Consecutive atoms fold into left-associative applications. A ')' ends the
// expression with msgUnexpectedParen, which the '(' that opened the group
// takes as its closing delimiter.
func parseExpr(toks *Tokens) (Term, *ParseError) {
	var res Term = Empty{}

	for {
		tok, ok := toks.Next()
		if !ok {
			return res, nil
		}

		var next Term
		switch tok {
		case `\`, "λ":
			abs, err := parseLambda(toks)
			if err != nil {
				return nil, err.within(res)
			}
			next = abs
		case ".":
			return nil, &ParseError{Msg: msgUnexpectedDot, Partial: res}
		case "(":
			group, err := parseExpr(toks)
			if err != nil {
				if err.Msg != msgUnexpectedParen {
					return nil, err.within(res)
				}
				group = err.Partial
			}
			next = group
		case ")":
			return nil, &ParseError{Msg: msgUnexpectedParen, Partial: res}
		default:
			next = atom(tok)
		}

		res = apply(res, next)
	}
}

// lambda ::= ('\' | 'λ') IDENT+ '.' expr
func parseLambda(toks *Tokens) (Term, *ParseError) {
	var params []string
	for {
		tok, ok := toks.Next()
		if !ok {
			return nil, expectedDot("end of file", params)
		}
		if tok == "." {
			break
		}
		switch tok {
		case `\`, "λ", "(", ")":
			return nil, expectedDot(tok, params)
		}
		params = append(params, tok)
	}

	body, err := parseExpr(toks)
	if err != nil {
		return nil, &ParseError{Msg: err.Msg, Partial: abstract(params, err.Partial)}
	}
	return abstract(params, body), nil
}

func expectedDot(found string, params []string) *ParseError {
	return &ParseError{
		Msg:     fmt.Sprintf("expected '.', found '%s'", found),
		Partial: abstract(params, Empty{}),
	}
}

func atom(tok string) Term {
	if term, ok := Builtin(tok); ok {
		return term
	}
	if n, ok := parseNumeral(tok); ok {
		return Numeral(n)
	}
	return Var{Name: tok}
}

// abstract wraps body in one abstraction per parameter, the last parameter
// innermost.
func abstract(params []string, body Term) Term {
	return lo.ReduceRight(params, func(body Term, param string, _ int) Term {
		return Abs{Arg: param, Body: body}
	}, body)
}

// apply juxtaposes two atoms. Empty operands (an empty program or "()")
// contribute nothing.
func apply(fun, arg Term) Term {
	if _, ok := fun.(Empty); ok {
		return arg
	}
	if _, ok := arg.(Empty); ok {
		return fun
	}
	return App{Fun: fun, Arg: arg}
}
