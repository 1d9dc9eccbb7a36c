package utils

import (
	"bytes"
	"io"
	"os"
	"unicode/utf8"
)

// binarySniffBytes bounds how much of a file is inspected when classifying
// its content; a prefix is enough to tell generated artifacts from text.
const binarySniffBytes = 8000

// IsBinary classifies a byte slice as binary content. A NUL byte or an
// invalid UTF-8 sequence marks the content binary; empty input counts as
// text so freshly created files stay editable.
func IsBinary(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return true
	}
	return !utf8.Valid(data)
}

// IsFileBinary reports whether the file at filePath holds binary content,
// judging by its leading binarySniffBytes. Unreadable files are reported as
// text; callers treat the classification as display metadata only.
func IsFileBinary(filePath string) bool {
	fileHandle, openError := os.Open(filePath)
	if openError != nil {
		return false
	}
	defer fileHandle.Close()

	sniffedContent, readError := io.ReadAll(io.LimitReader(fileHandle, binarySniffBytes))
	if readError != nil {
		return false
	}
	return IsBinary(sniffedContent)
}
