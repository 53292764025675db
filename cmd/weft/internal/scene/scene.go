// Package scene loads widget tree descriptions from YAML files. Scenes are
// used by the weft CLI to exercise the reconciler against declarative
// fixtures without writing Go code:
//
//	name: greeting
//	root:
//	  column:
//	    children:
//	      - label: {text: hello, key: a}
//	      - padding:
//	          inset: 8
//	          child:
//	            label: {text: world}
package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-weft/weft/pkg/core"
	"github.com/go-weft/weft/pkg/widgets"
)

// Scene is a named widget tree description.
type Scene struct {
	Name string `yaml:"name,omitempty"`
	Root *Node  `yaml:"root"`
}

// Node describes one widget. Exactly one of the variant fields must be set.
type Node struct {
	Label   *LabelNode   `yaml:"label,omitempty"`
	Padding *PaddingNode `yaml:"padding,omitempty"`
	Column  *ColumnNode  `yaml:"column,omitempty"`
}

// LabelNode describes a text leaf.
type LabelNode struct {
	Text string `yaml:"text"`
	Key  string `yaml:"key,omitempty"`
}

// PaddingNode describes uniform padding around one child.
type PaddingNode struct {
	Inset float64 `yaml:"inset"`
	Child *Node   `yaml:"child,omitempty"`
	Key   string  `yaml:"key,omitempty"`
}

// ColumnNode describes a vertical stack of children.
type ColumnNode struct {
	Children []*Node `yaml:"children,omitempty"`
	Key      string  `yaml:"key,omitempty"`
}

// Load reads and parses a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	return Parse(data)
}

// Parse parses scene YAML.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	if s.Root == nil {
		return nil, fmt.Errorf("scene has no root node")
	}
	return &s, nil
}

// Build converts the scene into a widget tree.
func (s *Scene) Build() (core.Widget, error) {
	return s.Root.build("root")
}

func (n *Node) build(path string) (core.Widget, error) {
	variants := 0
	if n.Label != nil {
		variants++
	}
	if n.Padding != nil {
		variants++
	}
	if n.Column != nil {
		variants++
	}
	if variants != 1 {
		return nil, fmt.Errorf("%s: node must have exactly one of label, padding, column (got %d)", path, variants)
	}

	switch {
	case n.Label != nil:
		return widgets.Label{Text: n.Label.Text, WidgetKey: nodeKey(n.Label.Key)}, nil

	case n.Padding != nil:
		var child core.Widget
		if n.Padding.Child != nil {
			var err error
			child, err = n.Padding.Child.build(path + ".child")
			if err != nil {
				return nil, err
			}
		}
		if n.Padding.Inset < 0 {
			return nil, fmt.Errorf("%s: inset must not be negative (got %v)", path, n.Padding.Inset)
		}
		return widgets.Padding{Inset: n.Padding.Inset, Child: child, WidgetKey: nodeKey(n.Padding.Key)}, nil

	default:
		children := make([]core.Widget, 0, len(n.Column.Children))
		for i, childNode := range n.Column.Children {
			child, err := childNode.build(fmt.Sprintf("%s.children[%d]", path, i))
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		return widgets.Column{Children: children, WidgetKey: nodeKey(n.Column.Key)}, nil
	}
}

// nodeKey maps the empty string to no key, so unkeyed YAML nodes reconcile
// positionally.
func nodeKey(key string) any {
	if key == "" {
		return nil
	}
	return key
}
