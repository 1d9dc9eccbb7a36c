// Package clipboard exposes the system clipboard behind a narrow interface
// so tools stay testable without touching the display server.
package clipboard

import "github.com/atotto/clipboard"

// Copier places text on the system clipboard.
type Copier interface {
	Copy(text string) error
}

// Service is the atotto-backed Copier; the library owns the per-platform
// probing (xclip/xsel, pbcopy, clip.exe).
type Service struct{}

var _ Copier = (*Service)(nil)

// NewService constructs the system clipboard service.
func NewService() *Service {
	return &Service{}
}

// Copy writes text to the system clipboard.
func (service *Service) Copy(text string) error {
	return clipboard.WriteAll(text)
}
