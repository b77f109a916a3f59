package shiftcat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRoundTrip(t *testing.T) {
	for _, src := range []string{
		"",
		"Copy",
		"foo",
		"Copy Drop Swap",
		"[Copy Drop]",
		"[]",
		`"hello world"`,
		"{a prompt}",
		"[foo] [bar] Cat",
		"[[nested]]",
	} {
		t.Run(src, func(t *testing.T) {
			v, err := Read(src)
			require.NoError(t, err)

			reprinted := String(v)
			v2, err := Read(reprinted)
			require.NoError(t, err)
			assert.True(t, Equal(v, v2), "round trip mismatch: %q -> %q", src, reprinted)
		})
	}
}

func TestReadErrors(t *testing.T) {
	for _, test := range []struct {
		name string
		src  string
	}{
		{"unbalanced open", "[Copy"},
		{"unbalanced close", "Copy]"},
		{"unbalanced quote", `"hello`},
		{"unbalanced brace", "{hello"},
		{"bad case initial", "123abc"},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := Read(test.src)
			require.Error(t, err)
			var ue UnreadableError
			assert.ErrorAs(t, err, &ue)
		})
	}
}

func TestReadWhitespaceIgnored(t *testing.T) {
	v, err := Read("  Copy\n\tDrop  ")
	require.NoError(t, err)
	want := Catenate(Constant("Copy"), Constant("Drop"))
	assert.True(t, Equal(want, v))
}

func TestReadQuoteNesting(t *testing.T) {
	v, err := Read("[[a] [b]]")
	require.NoError(t, err)
	body, ok := v.Body()
	require.True(t, ok)
	children, ok := body.Children()
	require.True(t, ok)
	require.Len(t, children, 2)
}
