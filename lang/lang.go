/*
Package lang holds what the example languages have in common: running a
tokenizer through a grammar and folding the result, and the configuration
of evaluation bounds.

Sub-packages implement the example languages:

	arith   integer expressions
	stlc    simply typed lambda calculus
	sysf    System F

# Configuration

Evaluators take a step bound. If a caller passes 0, the bound is read from
the global configuration key "slang.maxsteps", falling back to
DefaultMaxSteps.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package lang

import (
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/slang/lr/scanner"
	"github.com/npillmayer/slang/lr/slr"
	"github.com/pingcap/errors"
)

// tracer traces with key 'slang.lang'.
func tracer() tracing.Trace {
	return tracing.Select("slang.lang")
}

// DefaultMaxSteps bounds evaluations if neither the caller nor the
// configuration does.
const DefaultMaxSteps = 10000

// MaxSteps returns n if it is positive, otherwise the configured step bound.
func MaxSteps(n int) int {
	if n > 0 {
		return n
	}
	if n = gconf.GetInt("slang.maxsteps"); n > 0 {
		return n
	}
	return DefaultMaxSteps
}

// ParseTree runs a tokenizer through a grammar and returns the raw parse
// tree. The first error reported by the tokenizer takes precedence over
// parse errors, as the latter usually follow from it.
func ParseTree(g *slr.Grammar, tokenizer scanner.Tokenizer) (interface{}, error) {
	var scanErr error
	tokenizer.SetErrorHandler(func(e error) {
		if scanErr == nil {
			scanErr = e
		}
	})
	tree, err := g.Parse(slr.Scan(tokenizer))
	if scanErr != nil {
		tracer().Infof("scanner: %v", scanErr)
		return nil, errors.Trace(scanErr)
	}
	return tree, err
}

// Parse is ParseTree followed by slr.Transform.
func Parse(g *slr.Grammar, tokenizer scanner.Tokenizer) (interface{}, error) {
	tree, err := ParseTree(g, tokenizer)
	if err != nil {
		return nil, err
	}
	return slr.Transform(tree)
}
