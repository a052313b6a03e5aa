package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBadFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown_flag", args: []string{"-max", "5"}},
		{name: "bad_level", args: []string{"-log-level", "loud"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			require.Error(t, run(tt.args, &out))
			assert.Zero(t, out.Len())
		})
	}
}

func TestRunEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("full run takes about four seconds")
	}
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, run([]string{"-log-level", "error"}, &out))

	var want strings.Builder
	for i := 0; i < 20; i++ {
		fmt.Fprintf(&want, "Thread 1 counting up: %d\n", i)
	}
	for i := 20; i > 0; i-- {
		fmt.Fprintf(&want, "Thread 2 counting down: %d\n", i)
	}
	assert.Equal(t, want.String(), out.String())
}
