package model

import (
	"fmt"
	"strings"

	"abstracta/internal/domain"
)

const (
	pathSeparator = "/"
	pathUp        = ".."
	pathHere      = "."
)

// Path returns the chain of nodes from the root's child down to id. The root's
// own path is empty.
func (m *Model) Path(id domain.NodeID) ([]domain.NodeID, error) {
	if !m.Exists(id) {
		return nil, fmt.Errorf("path of %d: %w", id, ErrUnknownNode)
	}
	if id == domain.RootID {
		return nil, nil
	}
	ancestors := m.Ancestors(id)
	path := make([]domain.NodeID, 0, len(ancestors))
	// ancestors ends at the root, which is not part of the path
	for i := len(ancestors) - 2; i >= 0; i-- {
		path = append(path, ancestors[i])
	}
	return append(path, id), nil
}

// PathNames returns the names along Path(id) joined by "/"
func (m *Model) PathNames(id domain.NodeID) (string, error) {
	path, err := m.Path(id)
	if err != nil {
		return "", err
	}
	names := make([]string, len(path))
	for i, n := range path {
		names[i] = m.Name(n)
	}
	return strings.Join(names, pathSeparator), nil
}

// ResolvePath returns the shortest relative path from from to to. Paths are
// relative to the level from lives on: siblings are addressed by name, deeper
// nodes by their names joined with "/", and each level above costs one "..".
// It fails with ErrAmbiguousPath when Lookup would not lead back to to, as for
// an unnamed node, a name such as ".." or "a/b", or a later sibling sharing a
// name with an earlier one.
func (m *Model) ResolvePath(from, to domain.NodeID) (string, error) {
	fromPath, err := m.Path(from)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}
	toPath, err := m.Path(to)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}

	var base []domain.NodeID
	if len(fromPath) > 0 {
		base = fromPath[:len(fromPath)-1]
	}
	common := 0
	for common < len(base) && common < len(toPath) && base[common] == toPath[common] {
		common++
	}

	var parts []string
	for i := common; i < len(base); i++ {
		parts = append(parts, pathUp)
	}
	for _, n := range toPath[common:] {
		parts = append(parts, m.Name(n))
	}
	rel := pathHere
	if len(parts) > 0 {
		rel = strings.Join(parts, pathSeparator)
	}
	if back, err := m.Lookup(from, rel); err != nil || back != to {
		return "", fmt.Errorf("resolve path %d -> %d as %q: %w", from, to, rel, ErrAmbiguousPath)
	}
	return rel, nil
}

// Lookup resolves a path produced by ResolvePath back to a node, starting from
// the level from lives on. A name matches the first child carrying it.
func (m *Model) Lookup(from domain.NodeID, rel string) (domain.NodeID, error) {
	if !m.Exists(from) {
		return 0, fmt.Errorf("lookup %q: %w", rel, ErrUnknownNode)
	}
	cur := domain.RootID
	if parent, ok := m.Parent(from); ok {
		cur = parent
	}

	for _, part := range strings.Split(rel, pathSeparator) {
		switch part {
		case "", pathHere:
			continue
		case pathUp:
			parent, ok := m.Parent(cur)
			if !ok {
				return 0, fmt.Errorf("lookup %q from %d: above root: %w", rel, from, ErrPathNotFound)
			}
			cur = parent
		default:
			child, ok := m.childNamed(cur, part)
			if !ok {
				return 0, fmt.Errorf("lookup %q from %d: no %q: %w", rel, from, part, ErrPathNotFound)
			}
			cur = child
		}
	}
	return cur, nil
}

// Find resolves an absolute name path such as "Car/Engine" from the root
func (m *Model) Find(abs string) (domain.NodeID, error) {
	cur := domain.RootID
	for _, part := range strings.Split(strings.Trim(abs, pathSeparator), pathSeparator) {
		if part == "" {
			continue
		}
		child, ok := m.childNamed(cur, part)
		if !ok {
			return 0, fmt.Errorf("find %q: no %q: %w", abs, part, ErrPathNotFound)
		}
		cur = child
	}
	return cur, nil
}

func (m *Model) childNamed(parent domain.NodeID, name string) (domain.NodeID, bool) {
	for _, c := range m.slots[parent].children {
		if m.slots[c].name == name {
			return c, true
		}
	}
	return 0, false
}
