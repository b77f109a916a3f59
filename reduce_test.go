package shiftcat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEquationalLaws checks that evaluating each lhs renders back to rhs.
func TestEquationalLaws(t *testing.T) {
	for _, test := range []struct {
		name string
		src  string
		want string
	}{
		{"copy", "[foo] Copy", "[foo] [foo]"},
		{"drop", "[foo] Drop", ""},
		{"swap", "[foo] [bar] Swap", "[bar] [foo]"},
		{"cat", "[foo] [bar] Cat", "[foo bar]"},
		{"abs", "[foo] Abs", "[[foo]]"},
		{"app", "[foo] App", "foo"},
		{"inl", "[inl] [inr] [value] Inl App", "[value] inl"},
		{"inr", "[inl] [inr] [value] Inr App", "[value] inr"},
		{"pair app", "[fst] [snd] Pair App", "[fst] [snd]"},
		{"text swap", `"Hello" "world" Swap`, `"world" "Hello"`},
		{"prompt passes through", "{ Hello, world. }", "{ Hello, world. }"},
		{"shift reset", "[handler] Shift body0 body1 body2 Reset", "[body0 body1 body2] handler"},
	} {
		t.Run(test.name, func(t *testing.T) {
			v, err := Evaluate(test.src)
			require.NoError(t, err)
			assert.Equal(t, test.want, String(v))
		})
	}
}

func TestEvaluateAcceptsParsedValue(t *testing.T) {
	src, err := Read("[foo] Copy")
	require.NoError(t, err)
	v, err := Evaluate(src)
	require.NoError(t, err)
	assert.Equal(t, "[foo] [foo]", String(v))
}

func TestEvaluateUnknownCombinatorIsHardFailure(t *testing.T) {
	_, err := Evaluate("Frobnicate")
	require.Error(t, err)
	var ue UnknownError
	assert.ErrorAs(t, err, &ue)
	assert.Equal(t, "Frobnicate", ue.Name)
}

func TestEvaluateUnreadableSurfaces(t *testing.T) {
	_, err := Evaluate("[unbalanced")
	require.Error(t, err)
	var ue UnreadableError
	assert.ErrorAs(t, err, &ue)
}

func TestEvaluateStarvedCombinatorContinues(t *testing.T) {
	// Copy has nothing to copy, thunks and continues: the trailing "X"
	// Constant raises Unknown, proving the loop kept running past Copy.
	_, err := Evaluate("Copy X")
	require.Error(t, err)
	var ue UnknownError
	assert.ErrorAs(t, err, &ue)
	assert.Equal(t, "X", ue.Name)
}

func TestEvaluateTerminalSuspensionStops(t *testing.T) {
	// App has nothing to apply: it thunks and stops, so the trailing
	// Constant is never reached (and never raises Unknown).
	v, err := Evaluate("App Frobnicate")
	require.NoError(t, err)
	assert.Equal(t, "App Frobnicate", String(v))
}

func TestEvaluateUnresolvedVariableThunks(t *testing.T) {
	v, err := Evaluate("[x] Copy unresolved")
	require.NoError(t, err)
	assert.Equal(t, "[x] [x] unresolved", String(v))
}

func TestEvaluatePromptThunksVerbatim(t *testing.T) {
	v, err := Evaluate(`[x] Copy {please continue} Drop`)
	require.NoError(t, err)
	assert.Equal(t, `[x] [x] {please continue} Drop`, String(v))
}

func TestEvaluateShiftWithoutResetThunks(t *testing.T) {
	// No enclosing Reset: Shift thunks itself and its handler, preserving
	// the untouched remainder of code -- the residual equals the input.
	v, err := Evaluate("[handler] Shift body0 body1")
	require.NoError(t, err)
	assert.Equal(t, "[handler] Shift body0 body1", String(v))
}

func TestEvaluateGasExhaustionLeavesResidualSuffix(t *testing.T) {
	v, err := Evaluate("[x] Copy Drop Drop", WithGas(1))
	require.NoError(t, err)
	// one step: the leading Quote moves from code to data; nothing else runs.
	assert.Equal(t, `[x] Copy Drop Drop`, String(v))
}

func TestEvaluateDefineThenLookup(t *testing.T) {
	dict := NewDictionary()
	_, err := Evaluate(`[Copy] "dbl" Define`, WithDictionary(dict))
	require.NoError(t, err)

	v, err := Evaluate(`[x] dbl`, WithDictionary(dict))
	require.NoError(t, err)
	assert.Equal(t, "[x] [x]", String(v))
}

func TestEvaluateDefineWithoutDictionaryThunks(t *testing.T) {
	v, err := Evaluate(`[Copy] "dbl" Define`)
	require.NoError(t, err)
	assert.Equal(t, `[Copy] "dbl" Define`, String(v))
}

func TestEvaluateDeleteRemovesBinding(t *testing.T) {
	dict := NewDictionary()
	dict.Define("dbl", Constant("Copy"))

	_, err := Evaluate(`"dbl" Delete`, WithDictionary(dict))
	require.NoError(t, err)

	_, ok := dict.Lookup("dbl")
	assert.False(t, ok)
}

func TestEvaluateDictionaryLimitBlocksDefine(t *testing.T) {
	dict := &Dictionary{Limit: 1}
	dict.Define("existing", Constant("Copy"))

	v, err := Evaluate(`[Drop] "another" Define`, WithDictionary(dict))
	require.NoError(t, err)
	assert.Equal(t, `[Drop] "another" Define`, String(v))
	assert.Equal(t, 1, dict.Len())
}

func TestEvaluateIsDeterministic(t *testing.T) {
	const src = `[a] [b] Swap [c] Cat`
	first, err := Evaluate(src)
	require.NoError(t, err)
	second, err := Evaluate(src)
	require.NoError(t, err)
	assert.True(t, Equal(first, second))
}

func TestEvaluateResidualIsFixedPointWhenFullyReduced(t *testing.T) {
	v, err := Evaluate("[foo] Copy")
	require.NoError(t, err)

	again, err := Evaluate(v)
	require.NoError(t, err)
	assert.True(t, Equal(v, again))
}

func TestEvaluateRespectsDefaultGasWhenUnset(t *testing.T) {
	v, err := Evaluate("[foo] Copy Drop")
	require.NoError(t, err)
	assert.Equal(t, "[foo]", String(v))
}
