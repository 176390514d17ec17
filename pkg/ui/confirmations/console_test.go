package confirmations_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arthur-debert/minifiles/pkg/types"
	"github.com/arthur-debert/minifiles/pkg/ui/confirmations"
	"github.com/arthur-debert/minifiles/pkg/ui/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleDialog_Confirm(t *testing.T) {
	plan := []types.Action{types.Create("/tmp/x/new.txt")}

	tests := []struct {
		name   string
		input  string
		expect bool
	}{
		{name: "yes", input: "y\n", expect: true},
		{name: "long_yes", input: "YES\n", expect: true},
		{name: "no", input: "n\n", expect: false},
		{name: "empty_declines", input: "\n", expect: false},
		{name: "eof_declines", input: "", expect: false},
		{name: "yes_without_newline", input: "y", expect: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			dialog := confirmations.NewConsoleDialog(text.New(&out), strings.NewReader(tt.input), &out)

			ok, err := dialog.Confirm(plan)

			require.NoError(t, err)
			assert.Equal(t, tt.expect, ok)
			assert.Contains(t, out.String(), "CREATE │ new.txt (file)")
			assert.Contains(t, out.String(), "[y/N]")
		})
	}
}

func TestConsoleDialog_EmptyPlan(t *testing.T) {
	var out bytes.Buffer
	dialog := confirmations.NewConsoleDialog(text.New(&out), strings.NewReader(""), &out)

	ok, err := dialog.Confirm(nil)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, out.String())
}
