package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortFields(t *testing.T) {
	for _, tc := range []struct {
		name       string
		fields     []string
		descending bool

		expected string
	}{
		{
			name:     "ascending",
			fields:   []string{"1", "0", "5", "4", "3"},
			expected: "0\n1\n3\n4\n5\n",
		},
		{
			name:       "descending with repeats",
			fields:     []string{"2.5", "-1", "2.5", "10"},
			descending: true,
			expected:   "10\n2.5\n2.5\n-1\n",
		},
		{
			name:     "empty",
			expected: "",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, sortFields(&out, tc.fields, tc.descending))
			assert.Equal(t, tc.expected, out.String())
		})
	}

	t.Run("signed zeros", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, sortFields(&out, []string{"-0", "0", "-0", "1"}, false))

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 4)
		assert.ElementsMatch(t, []string{"-0", "-0", "0"}, lines[:3])
		assert.Equal(t, "1", lines[3])
	})

	t.Run("invalid", func(t *testing.T) {
		var out bytes.Buffer
		assert.ErrorContains(t, sortFields(&out, []string{"1", "two"}, false), `"two"`)
		assert.Error(t, sortFields(&out, []string{"NaN"}, false))
	})
}

func TestReadFields(t *testing.T) {
	fields, err := readFields(strings.NewReader("1 2\n\n 3\t4 \n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4"}, fields)
}

func TestReplay(t *testing.T) {
	script := `
# records a..e with priorities 1 0 5 4 3
add a 1
add b 0
add c 5
add d 4
add e 3
update c 2
get c
delete b
delete b
size
peek
trim
drain
poll
`
	var out bytes.Buffer
	require.NoError(t, replay(strings.NewReader(script), &out))

	assert.Equal(t, strings.Join([]string{
		"added a 1",
		"added b 0",
		"added c 5",
		"added d 4",
		"added e 3",
		"updated c 5 -> 2",
		"c 2",
		"deleted b 0",
		"absent b",
		"4",
		"a 1",
		"trimmed 4",
		"a 1",
		"c 2",
		"e 3",
		"d 4",
		"empty",
	}, "\n")+"\n", out.String())
}

func TestReplay_Errors(t *testing.T) {
	for _, tc := range []struct {
		name   string
		script string

		expected string
	}{
		{name: "unknown op", script: "push a 1", expected: `line 1: unknown operation "push"`},
		{name: "arity", script: "add a", expected: "line 1: add takes 2 argument(s), got 1"},
		{name: "priority", script: "add a one", expected: `line 1: invalid priority "one"`},
		{name: "duplicate", script: "add a 1\nadd a 2", expected: "line 2: add a: key already queued"},
		{name: "update missing", script: "\nupdate z 1", expected: "line 2: update z: key not found"},
		{name: "get missing", script: "get z", expected: "line 1: get z: key not found"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			err := replay(strings.NewReader(tc.script), &out)
			assert.ErrorContains(t, err, tc.expected)
		})
	}
}
