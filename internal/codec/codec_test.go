package codec

import (
	"bytes"
	"strings"
	"testing"

	"abstracta/internal/domain"
)

const carYAML = `- Name: Car
  Rect: [0, 0, 150, 50]
  Children:
    - Name: Engine
      Rect: [0, 0, 100, 50]
      Connections:
        - Driveshaft
      Children:
        - Name: Pistons
          Rect: [10, 20, 100, 50]
    - Name: Driveshaft
      Rect: [200, 0, 100, 50]
`

func TestYAMLParse(t *testing.T) {
	outline, err := NewYAMLCodec().Parse(strings.NewReader(carYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if outline.Count() != 4 {
		t.Errorf("expected 4 nodes, got %d", outline.Count())
	}
	car := outline.Nodes[0]
	if car.Name != "Car" || car.Rect != domain.R(0, 0, 150, 50) {
		t.Errorf("unexpected top node %+v", car)
	}
	engine := car.Children[0]
	if len(engine.Connections) != 1 || engine.Connections[0] != "Driveshaft" {
		t.Errorf("expected Engine -> Driveshaft, got %v", engine.Connections)
	}
	if engine.Children[0].Rect != domain.R(10, 20, 100, 50) {
		t.Errorf("unexpected Pistons rect %v", engine.Children[0].Rect)
	}
}

func TestYAMLParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"short rect", "- Name: A\n  Rect: [1, 2]\n"},
		{"mapping instead of list", "Name: A\n"},
		{"malformed", "- Name: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewYAMLCodec().Parse(strings.NewReader(tt.input)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestYAMLParseEmpty(t *testing.T) {
	outline, err := NewYAMLCodec().Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if outline.Count() != 0 {
		t.Errorf("expected empty outline, got %d nodes", outline.Count())
	}
}

func TestYAMLExportIsStable(t *testing.T) {
	c := NewYAMLCodec()
	outline, err := c.Parse(strings.NewReader(carYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var buf bytes.Buffer
	if err := c.Export(outline, &buf); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if buf.String() != carYAML {
		t.Errorf("expected export to reproduce input, got:\n%s", buf.String())
	}
}

func TestForFormat(t *testing.T) {
	for _, name := range []string{"yaml", "JSON"} {
		if _, err := ForFormat(name); err != nil {
			t.Errorf("ForFormat(%q): %v", name, err)
		}
	}
	if _, err := ForFormat("xml"); err == nil {
		t.Error("expected error for unsupported format")
	}
	if got := DetectFormat("diagram.JSON"); got != "json" {
		t.Errorf("expected json, got %s", got)
	}
	if got := DetectFormat("diagram.yml"); got != "yaml" {
		t.Errorf("expected yaml, got %s", got)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	outline, _ := NewYAMLCodec().Parse(strings.NewReader(carYAML))
	c := NewJSONCodec()

	var buf bytes.Buffer
	if err := c.Export(outline, &buf); err != nil {
		t.Fatalf("Export: %v", err)
	}
	back, err := c.Parse(&buf)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if back.Count() != outline.Count() || back.ConnectionCount() != outline.ConnectionCount() {
		t.Errorf("expected %d/%d nodes/connections, got %d/%d",
			outline.Count(), outline.ConnectionCount(), back.Count(), back.ConnectionCount())
	}
}
