package output

import (
	"encoding/json"
	"io"

	"repohealth/internal/engine"
)

// JSONRenderer writes the full report as indented JSON. The shape is
// stable and intended for machine consumption in CI pipelines.
type JSONRenderer struct{}

func (j *JSONRenderer) Render(w io.Writer, rep *engine.Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rep)
}
