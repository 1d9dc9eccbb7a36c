package commands

import (
	"fmt"
	"strings"

	"github.com/temirov/toolbelt/internal/types"
)

const (
	// documentTitle opens every generated context document.
	documentTitle = "PROJECT CONTEXT FOR AI ASSISTANCE"
	// StructureSectionMarker locates the tree section inside a document.
	StructureSectionMarker = "PROJECT STRUCTURE:"
	// ContentsSectionMarker locates the file-content section inside a document.
	ContentsSectionMarker = "FILE CONTENTS:"
	// assistantSectionMarker opens the instructional postscript.
	assistantSectionMarker = "FOR AI ASSISTANT:"

	// documentPostscript is the fixed instructional text closing the document.
	documentPostscript = `This is the complete context of the project. Please analyze the structure
and code to provide accurate assistance. Key files include configuration
files, source code, and documentation.

When responding, reference specific files and paths from the structure above.`

	// promptTemplatePreamble opens the prompt-template save variant.
	promptTemplatePreamble = "You are an expert developer assistant. Below is the complete context of a project. Please analyze it thoroughly and provide accurate assistance."
	// promptTemplateTask closes the prompt-template save variant.
	promptTemplateTask = `YOUR TASK:
Based on the project structure and code above, please:

1. First, understand the project architecture and main components
2. Identify key files, dependencies, and configuration
3. Provide specific, actionable advice or code

My specific request is: [Describe what you need help with here]

Please reference specific files and paths from the project structure in your response. Be detailed but concise.`
)

// Section identifies an extractable part of a generated document.
type Section int

const (
	// SectionStructure selects the directory tree part of a document.
	SectionStructure Section = iota
	// SectionContents selects the file-content part of a document.
	SectionContents
)

// Document bundles the rendered pieces of one context-generation pass.
type Document struct {
	ProjectName   string
	SelectionMode types.SelectionMode
	GeneratedAt   string
	Tree          string
	Contents      string
}

// Render assembles the full document: header, structure section, contents
// section, and the instructional postscript.
func (document Document) Render() string {
	separator := strings.Repeat("=", fileSeparatorWidth)
	var builder strings.Builder
	builder.WriteString(documentTitle + "\n")
	builder.WriteString(separator + "\n")
	builder.WriteString(fmt.Sprintf("PROJECT: %s\n", document.ProjectName))
	builder.WriteString(fmt.Sprintf("SELECTION MODE: %s\n", strings.ToUpper(string(document.SelectionMode))))
	builder.WriteString(fmt.Sprintf("GENERATED: %s\n", document.GeneratedAt))
	builder.WriteString(separator + "\n\n")
	builder.WriteString(StructureSectionMarker + "\n")
	builder.WriteString(document.Tree + "\n")
	builder.WriteString(separator + "\n")
	builder.WriteString(ContentsSectionMarker + "\n")
	builder.WriteString(document.Contents + "\n")
	builder.WriteString(separator + "\n")
	builder.WriteString(assistantSectionMarker + "\n")
	builder.WriteString(documentPostscript + "\n")
	return builder.String()
}

// ExtractSection slices one section out of a rendered document. The structure
// section runs from the first line containing its marker up to the line
// before the next separator; the contents section runs from its marker line
// to the end of the document.
func ExtractSection(renderedDocument string, section Section) (string, error) {
	lines := strings.Split(renderedDocument, "\n")
	marker := StructureSectionMarker
	if section == SectionContents {
		marker = ContentsSectionMarker
	}

	markerIndex := -1
	for lineIndex, line := range lines {
		if strings.Contains(line, marker) {
			markerIndex = lineIndex
			break
		}
	}
	if markerIndex < 0 {
		return "", fmt.Errorf("section marker %q not found", marker)
	}

	if section == SectionContents {
		return strings.Join(lines[markerIndex:], "\n"), nil
	}

	separator := strings.Repeat("=", fileSeparatorWidth)
	for lineIndex := markerIndex + 1; lineIndex < len(lines); lineIndex++ {
		if strings.Contains(lines[lineIndex], separator) {
			return strings.Join(lines[markerIndex:lineIndex], "\n"), nil
		}
	}
	return strings.Join(lines[markerIndex:], "\n"), nil
}

// PromptTemplate wraps a rendered document in instructional boilerplate
// addressed to an AI assistant.
func PromptTemplate(renderedDocument string) string {
	var builder strings.Builder
	builder.WriteString(promptTemplatePreamble + "\n\n")
	builder.WriteString("PROJECT CONTEXT:\n")
	builder.WriteString(renderedDocument + "\n\n")
	builder.WriteString(promptTemplateTask)
	return builder.String()
}
