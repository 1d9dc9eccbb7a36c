// Package prompt implements the operator interaction layer. Core algorithms
// never prompt; tools collect configuration values here and pass them to the
// core as plain data.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

const (
	// headerWidth is the width of the boxed section headers.
	headerWidth = 50
	// pauseMessage is shown between a tool run and the next menu render.
	pauseMessage = "\nPress Enter to continue..."

	currentDirectoryFormat  = "\nCurrent directory: %s\n"
	useCurrentDirectoryAsk  = "Use current directory? (y/n): "
	enterProjectPathAsk     = "Enter project path: "
	invalidDirectoryFormat  = "Error: path %q does not exist or is not a directory.\n"
	affirmativeAnswer       = "y"
)

// Interactor reads operator input and writes prompts over an injected
// reader/writer pair.
type Interactor struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewInteractor constructs an Interactor over the given streams.
func NewInteractor(input io.Reader, output io.Writer) *Interactor {
	return &Interactor{
		reader: bufio.NewReader(input),
		writer: output,
	}
}

// Ask prints the question and returns the operator's trimmed answer. An
// exhausted input stream yields an empty answer.
func (interactor *Interactor) Ask(question string) string {
	fmt.Fprint(interactor.writer, question)
	line, readError := interactor.reader.ReadString('\n')
	if readError != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

// AskLine prints the question and returns the operator's trimmed answer
// together with any read error, letting the caller tell an exhausted input
// stream apart from an empty answer.
func (interactor *Interactor) AskLine(question string) (string, error) {
	fmt.Fprint(interactor.writer, question)
	line, readError := interactor.reader.ReadString('\n')
	if readError != nil && line == "" {
		return "", readError
	}
	return strings.TrimSpace(line), nil
}

// Confirm asks a yes/no question and returns true only for "y".
func (interactor *Interactor) Confirm(question string) bool {
	return strings.ToLower(interactor.Ask(question)) == affirmativeAnswer
}

// ConfirmDefaultYes asks a yes/no question and returns true for "y" or an
// empty answer.
func (interactor *Interactor) ConfirmDefaultYes(question string) bool {
	answer := strings.ToLower(interactor.Ask(question))
	return answer == affirmativeAnswer || answer == ""
}

// PrintHeader prints a centered boxed header for a tool section.
func (interactor *Interactor) PrintHeader(title string) {
	border := strings.Repeat("=", headerWidth)
	fmt.Fprintf(interactor.writer, "\n%s\n%s\n%s\n", border, CenterText(title, headerWidth), border)
}

// Printf writes formatted text to the operator.
func (interactor *Interactor) Printf(format string, arguments ...any) {
	fmt.Fprintf(interactor.writer, format, arguments...)
}

// Println writes a line of text to the operator.
func (interactor *Interactor) Println(arguments ...any) {
	fmt.Fprintln(interactor.writer, arguments...)
}

// Pause waits for the operator to press Enter.
func (interactor *Interactor) Pause() {
	interactor.Ask(pauseMessage)
}

// ProjectPath asks for a project root, defaulting to the process working
// directory and re-prompting until an existing directory is entered.
func (interactor *Interactor) ProjectPath() string {
	defaultPath, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		defaultPath = "."
	}
	interactor.Printf(currentDirectoryFormat, defaultPath)
	if interactor.ConfirmDefaultYes(useCurrentDirectoryAsk) {
		return defaultPath
	}
	for {
		customPath := interactor.Ask(enterProjectPathAsk)
		if customPath == "" {
			return defaultPath
		}
		pathInfo, statError := os.Stat(customPath)
		if statError == nil && pathInfo.IsDir() {
			return customPath
		}
		interactor.Printf(invalidDirectoryFormat, customPath)
	}
}

// CenterText pads text on both sides to the requested width, counting runes
// so multibyte titles stay centered.
func CenterText(text string, width int) string {
	textWidth := utf8.RuneCountInString(text)
	if textWidth >= width {
		return text
	}
	leftPadding := (width - textWidth) / 2
	rightPadding := width - textWidth - leftPadding
	return strings.Repeat(" ", leftPadding) + text + strings.Repeat(" ", rightPadding)
}
