package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubTerminals(t *testing.T, ttys ...uintptr) {
	t.Helper()
	orig := isTerminal
	t.Cleanup(func() { isTerminal = orig })
	isTerminal = func(fd uintptr) bool {
		for _, tty := range ttys {
			if fd == tty {
				return true
			}
		}
		return false
	}
}

func TestAllTerminals(t *testing.T) {
	const stdin, stdout = 0, 1

	stubTerminals(t, stdin, stdout)
	assert.True(t, allTerminals(stdin, stdout))

	// deadline --wait > out.txt from a terminal.
	stubTerminals(t, stdin)
	assert.False(t, allTerminals(stdin, stdout))

	stubTerminals(t, stdout)
	assert.False(t, allTerminals(stdin, stdout))
}

func TestAllTerminals_Pipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	assert.False(t, allTerminals(r.Fd(), w.Fd()))
}
