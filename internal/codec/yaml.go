package codec

import (
	"fmt"
	"io"

	"abstracta/internal/domain"

	"gopkg.in/yaml.v3"
)

// YAMLCodec handles the nested-list YAML format:
//
//	- Name: Car
//	  Rect: [0, 0, 150, 50]
//	  Connections:
//	    - ../Road
//	  Children:
//	    - Name: Engine
//	      Rect: [0, 0, 100, 50]
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return "yaml"
}

// yamlNode is one list entry. Field order here is the order written.
type yamlNode struct {
	Name        string     `yaml:"Name"`
	Rect        []float64  `yaml:"Rect,flow"`
	Connections []string   `yaml:"Connections,omitempty"`
	Children    []yamlNode `yaml:"Children,omitempty"`
}

// Parse imports an outline from YAML
func (c *YAMLCodec) Parse(r io.Reader) (*domain.Outline, error) {
	var nodes []yamlNode
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&nodes); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	outline := domain.NewOutline()
	for _, yn := range nodes {
		node, err := fromYAML(yn)
		if err != nil {
			return nil, err
		}
		outline.AddNode(node)
	}
	return outline, nil
}

func fromYAML(yn yamlNode) (domain.OutlineNode, error) {
	node := domain.OutlineNode{
		Name:        yn.Name,
		Connections: yn.Connections,
	}
	switch len(yn.Rect) {
	case 0:
	case 4:
		node.Rect = domain.R(yn.Rect[0], yn.Rect[1], yn.Rect[2], yn.Rect[3])
	default:
		return node, fmt.Errorf("node %q: Rect needs 4 values [x, y, w, h], got %d", yn.Name, len(yn.Rect))
	}

	for _, child := range yn.Children {
		cn, err := fromYAML(child)
		if err != nil {
			return node, err
		}
		node.Children = append(node.Children, cn)
	}
	return node, nil
}

// Export writes an outline as YAML
func (c *YAMLCodec) Export(outline *domain.Outline, w io.Writer) error {
	nodes := make([]yamlNode, 0, len(outline.Nodes))
	for _, node := range outline.Nodes {
		nodes = append(nodes, toYAML(node))
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(nodes); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}

func toYAML(node domain.OutlineNode) yamlNode {
	r := node.Rect
	yn := yamlNode{
		Name:        node.Name,
		Rect:        []float64{r.X, r.Y, r.W, r.H},
		Connections: node.Connections,
	}
	for _, child := range node.Children {
		yn.Children = append(yn.Children, toYAML(child))
	}
	return yn
}
