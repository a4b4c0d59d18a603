package arith

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/slang/lr/slr"
	"github.com/stretchr/testify/require"
)

func TestEval(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slang.lang")
	defer teardown()
	//
	calc, err := New()
	require.NoError(t, err)
	for input, expected := range map[string]int64{
		"7":                    7,
		"34 + (12 x (88 + 1))": 1102,
		"2 * 3 + 4":            10,
		"2 + 3 * 4":            14,
		"(2 + 3) x 4":          20,
		"1 + 2 + 3 + 4 + 5":    15,
		"\t10 x 10 x 10\n":     1000,
	} {
		v, err := calc.Eval(input)
		require.NoError(t, err, input)
		require.Equal(t, expected, v, input)
	}
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slang.lang")
	defer teardown()
	//
	calc, err := New()
	require.NoError(t, err)
	_, err = calc.Eval("2 +")
	perr, ok := slr.AsParseError(err)
	require.True(t, ok, "expected a parse error, have %v", err)
	require.Equal(t, slr.UnexpectedEnd, perr.Kind)
	//
	_, err = calc.Eval("2 + + 3")
	perr, ok = slr.AsParseError(err)
	require.True(t, ok)
	require.Equal(t, slr.NoAction, perr.Kind)
	require.Equal(t, 2, perr.Position)
}

func TestScanError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slang.lang")
	defer teardown()
	//
	calc, err := New()
	require.NoError(t, err)
	_, err = calc.Eval("2 ? 3")
	require.Error(t, err)
	_, ok := slr.AsParseError(err)
	require.False(t, ok, "expected a scanner error, have %v", err)
}
