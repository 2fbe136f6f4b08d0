package types

import (
	"encoding/json"
	"fmt"
)

// NodeKind tags a StructureNode as a file or a directory.
type NodeKind int

const (
	KindFile NodeKind = iota
	KindDirectory
)

func (k NodeKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	default:
		return fmt.Sprintf("NodeKind(%d)", int(k))
	}
}

// StructureNode is one entry of the planned project tree.
// The root is an unnamed directory whose children are the top-level entries.
type StructureNode struct {
	Kind        NodeKind
	Name        string
	Description string
	// Children holds file entries first, then directory entries, each in
	// the order the model listed them. Always empty for files.
	Children []*StructureNode
}

func (n *StructureNode) IsDir() bool { return n.Kind == KindDirectory }

// Files returns the direct file children in order.
func (n *StructureNode) Files() []*StructureNode {
	return n.childrenOf(KindFile)
}

// Directories returns the direct directory children in order.
func (n *StructureNode) Directories() []*StructureNode {
	return n.childrenOf(KindDirectory)
}

func (n *StructureNode) childrenOf(kind NodeKind) []*StructureNode {
	var out []*StructureNode
	for _, c := range n.Children {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// wireNode mirrors the JSON the planner asks the model for.
// "type" is accepted but the array an entry sits in decides its kind.
type wireNode struct {
	Type        string     `json:"type,omitempty"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Files       []wireNode `json:"files,omitempty"`
	Directories []wireNode `json:"directories,omitempty"`
}

// UnmarshalJSON decodes a directory-shaped object ({"files":[...],"directories":[...]}).
func (n *StructureNode) UnmarshalJSON(data []byte) error {
	var w wireNode
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*n = *fromWire(w, KindDirectory)
	return nil
}

// MarshalJSON encodes the node back into the planner's wire shape.
func (n *StructureNode) MarshalJSON() ([]byte, error) {
	return json.Marshal(toWire(n))
}

func fromWire(w wireNode, kind NodeKind) *StructureNode {
	node := &StructureNode{Kind: kind, Name: w.Name, Description: w.Description}
	if kind == KindFile {
		return node
	}
	for _, f := range w.Files {
		node.Children = append(node.Children, fromWire(f, KindFile))
	}
	for _, d := range w.Directories {
		node.Children = append(node.Children, fromWire(d, KindDirectory))
	}
	return node
}

func toWire(n *StructureNode) wireNode {
	w := wireNode{Type: n.Kind.String(), Name: n.Name, Description: n.Description}
	for _, c := range n.Children {
		if c.IsDir() {
			w.Directories = append(w.Directories, toWire(c))
		} else {
			w.Files = append(w.Files, toWire(c))
		}
	}
	return w
}

// GeneratedFile is a single file produced by the content generator.
type GeneratedFile struct {
	Path    string `json:"path"` // relative to the working directory
	Type    string `json:"type"` // e.g. "Go", "Markdown"
	Content string `json:"content"`
}
