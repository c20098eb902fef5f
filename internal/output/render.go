package output

import (
	"fmt"
	"io"
	"os"

	"repohealth/internal/engine"
)

// Renderer writes a finished report in one output format.
type Renderer interface {
	Render(w io.Writer, rep *engine.Report) error
}

func NewRenderer(format string, plain bool) (Renderer, error) {
	switch format {
	case "", "text":
		return &TextRenderer{Plain: plain}, nil
	case "json":
		return &JSONRenderer{}, nil
	case "md", "markdown":
		return &MarkdownRenderer{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteReport renders rep to path, or to stdout when path is empty.
// Writes to a file are always plain regardless of the plain flag.
func WriteReport(rep *engine.Report, format, path string, plain bool) error {
	if path == "" {
		r, err := NewRenderer(format, plain)
		if err != nil {
			return err
		}
		return r.Render(os.Stdout, rep)
	}

	r, err := NewRenderer(format, true)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	if err := r.Render(f, rep); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
