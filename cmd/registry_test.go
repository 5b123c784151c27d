package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_AppliedCommandRuns(t *testing.T) {
	out := &bytes.Buffer{}
	Register(&cobra.Command{
		Use:  "test:echo PART",
		Args: cobra.ExactArgs(1),
		Run: func(c *cobra.Command, args []string) {
			c.Print("checked " + args[0])
		},
	})
	Apply()

	rootCmd.SetOut(out)
	rootCmd.SetArgs([]string{"test:echo", "A1"})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "checked A1", out.String())

	assert.Panics(t, func() { Register(&cobra.Command{Use: "test:late"}) })
}
