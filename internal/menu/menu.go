// Package menu implements the interactive dispatch loop: it renders the
// numbered tool menu, reads a selection, runs the chosen tool to completion,
// and repeats until the operator exits.
package menu

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/toolbelt/internal/prompt"
	"github.com/temirov/toolbelt/internal/types"
)

const (
	// menuTitle is the centered heading of the main menu.
	menuTitle = "TOOL EXECUTOR"
	// headerWidth is the width of the menu header box.
	headerWidth = 50
	// optionSeparatorWidth is the width of the line above the selection prompt.
	optionSeparatorWidth = 40

	exitOptionLabel      = "0. Exit"
	selectionPrompt      = "Select option: "
	toolLineFormat       = "%d. %s — %s\n"
	invalidOptionMessage = "Invalid option"
	invalidInputMessage  = "Invalid input"
	toolFailedFormat     = "Tool failed: %v\n"
)

// Loop dispatches menu selections to tools until exit is chosen or the input
// stream ends. Tool runs block the loop; there is no concurrency.
type Loop struct {
	tools      []types.Tool
	interactor *prompt.Interactor
	logger     *zap.Logger
}

// NewLoop constructs a dispatch loop over the given tools. The interactor is
// shared with the tools so menu and tool prompts read one input stream.
func NewLoop(tools []types.Tool, interactor *prompt.Interactor, logger *zap.Logger) *Loop {
	return &Loop{
		tools:      tools,
		interactor: interactor,
		logger:     logger,
	}
}

// Run executes the dispatch loop. It returns nil on a normal exit, covering
// both an explicit "0" selection and an exhausted input stream.
func (loop *Loop) Run() error {
	for {
		loop.renderMenu()
		selection, readError := loop.interactor.AskLine(selectionPrompt)
		if readError != nil {
			return nil
		}

		if selection == "0" {
			return nil
		}

		selectedNumber, parseError := strconv.Atoi(selection)
		if parseError != nil {
			loop.interactor.Println(invalidInputMessage)
			loop.interactor.Pause()
			continue
		}
		if selectedNumber < 1 || selectedNumber > len(loop.tools) {
			loop.interactor.Println(invalidOptionMessage)
			loop.interactor.Pause()
			continue
		}

		selectedTool := loop.tools[selectedNumber-1]
		if runError := selectedTool.Run(); runError != nil {
			loop.logger.Warn("tool run failed",
				zap.String("tool", selectedTool.Name()),
				zap.Error(runError))
			loop.interactor.Printf(toolFailedFormat, runError)
		}
		loop.interactor.Pause()
	}
}

// renderMenu prints the boxed header and the numbered tool list.
func (loop *Loop) renderMenu() {
	border := strings.Repeat("=", headerWidth)
	loop.interactor.Printf("\n%s\n%s\n%s\n", border, prompt.CenterText(menuTitle, headerWidth), border)
	for toolIndex, toolInstance := range loop.tools {
		loop.interactor.Printf(toolLineFormat, toolIndex+1, toolInstance.Name(), toolInstance.Description())
	}
	loop.interactor.Println(exitOptionLabel)
	loop.interactor.Println(strings.Repeat("-", optionSeparatorWidth))
}
