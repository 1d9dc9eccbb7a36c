package main

import (
	"fmt"

	"github.com/temirov/toolbelt/internal/cli"
	"github.com/temirov/toolbelt/internal/utils"
)

// main is the entry point for the toolbelt command.
func main() {
	loggerInstance, loggerInitializationError := utils.NewApplicationLogger()
	if loggerInitializationError != nil {
		panic(fmt.Errorf("logger initialization failed: %w", loggerInitializationError))
	}
	defer loggerInstance.Sync()
	if applicationExecutionError := cli.Execute(loggerInstance); applicationExecutionError != nil {
		loggerInstance.Fatal("application execution failed: " + applicationExecutionError.Error())
	}
}
