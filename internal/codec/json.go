package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"abstracta/internal/domain"
)

// JSONCodec handles JSON import/export
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return "json"
}

// Parse imports an outline from JSON
func (c *JSONCodec) Parse(r io.Reader) (*domain.Outline, error) {
	var outline domain.Outline
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&outline); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if outline.Nodes == nil {
		outline.Nodes = make([]domain.OutlineNode, 0)
	}

	return &outline, nil
}

// Export writes an outline as JSON
func (c *JSONCodec) Export(outline *domain.Outline, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(outline); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
