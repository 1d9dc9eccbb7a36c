package cli

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestRootCommandVersionFlag(testingHandle *testing.T) {
	rootCommand := newRootCommand(zap.NewNop())
	outputBuffer := &bytes.Buffer{}
	rootCommand.SetOut(outputBuffer)
	rootCommand.SetErr(outputBuffer)
	rootCommand.SetArgs([]string{"--version"})

	if executionError := rootCommand.Execute(); executionError != nil {
		testingHandle.Fatalf("version flag execution failed: %v", executionError)
	}

	expectedOutput := "toolbelt version: " + applicationVersion + "\n"
	if outputBuffer.String() != expectedOutput {
		testingHandle.Fatalf("expected version output %q, got %q", expectedOutput, outputBuffer.String())
	}
}

func TestRootCommandRejectsUnknownFlag(testingHandle *testing.T) {
	rootCommand := newRootCommand(zap.NewNop())
	outputBuffer := &bytes.Buffer{}
	rootCommand.SetOut(outputBuffer)
	rootCommand.SetErr(outputBuffer)
	rootCommand.SetArgs([]string{"--no-such-flag"})

	executionError := rootCommand.Execute()
	if executionError == nil {
		testingHandle.Fatal("expected an error for an unknown flag")
	}
	if !strings.Contains(executionError.Error(), "no-such-flag") {
		testingHandle.Fatalf("expected the error to name the flag, got %q", executionError.Error())
	}
}
