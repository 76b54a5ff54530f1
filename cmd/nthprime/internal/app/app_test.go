package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNthCommandPrintsKnownValues(t *testing.T) {
	root := NewRootCommand()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs([]string{"nth", "0", "10", "1000"})

	require.NoError(t, root.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "0\t2", lines[0])
	assert.Equal(t, "10\t31", lines[1])
	assert.Equal(t, "1000\t7927", lines[2])
}

func TestCountCommandPrintsCheckpoint(t *testing.T) {
	root := NewRootCommand()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetArgs([]string{"count", "1000"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "168", strings.TrimSpace(out.String()))
}

func TestNthCommandRejectsInvalidIndex(t *testing.T) {
	root := NewRootCommand()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs([]string{"nth", "not-a-number"})

	err := root.Execute()
	assert.Error(t, err)
}
