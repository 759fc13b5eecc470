package cmd

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnknownCommandIsRejected(t *testing.T) {
	rootCmd.SetArgs([]string{"frobnicate"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestDefaultWorkflowIsDeploy(t *testing.T) {
	// A bare invocation runs the same handler as the deploy subcommand.
	require.NotNil(t, rootCmd.RunE)
	assert.Equal(t,
		reflect.ValueOf(runDeploy).Pointer(),
		reflect.ValueOf(rootCmd.RunE).Pointer())
	assert.Equal(t,
		reflect.ValueOf(runDeploy).Pointer(),
		reflect.ValueOf(deployCmd.RunE).Pointer())
}

func TestPreviewIsAServeSynonym(t *testing.T) {
	assert.Contains(t, serveCmd.Aliases, "preview")
}

func TestRegisteredSubcommands(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "deploy")
	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "build")
}

func TestHelpHasNoSideEffects(t *testing.T) {
	rootCmd.SetArgs([]string{"help"})
	defer rootCmd.SetArgs(nil)

	assert.NoError(t, rootCmd.Execute())
}
