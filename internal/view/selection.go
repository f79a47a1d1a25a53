package view

import "abstracta/internal/domain"

// SelectedNodes returns the selected nodes in selection order
func (v *View) SelectedNodes() []domain.NodeID {
	return append([]domain.NodeID(nil), v.selectedNodes...)
}

// SetSelectedNodes replaces the node selection. Duplicates are dropped and
// observers are always notified.
func (v *View) SetSelectedNodes(ids []domain.NodeID) {
	v.selectedNodes = v.selectedNodes[:0:0]
	for _, id := range ids {
		if indexOf(v.selectedNodes, id) < 0 {
			v.selectedNodes = append(v.selectedNodes, id)
		}
	}
	v.events.dispatch(EventSelectionChanged)
}

// SelectNode adds id to the node selection
func (v *View) SelectNode(id domain.NodeID) {
	if indexOf(v.selectedNodes, id) >= 0 {
		return
	}
	v.selectedNodes = append(v.selectedNodes, id)
	v.events.dispatch(EventSelectionChanged)
}

// DeselectNode removes id from the node selection
func (v *View) DeselectNode(id domain.NodeID) {
	i := indexOf(v.selectedNodes, id)
	if i < 0 {
		return
	}
	v.selectedNodes = append(v.selectedNodes[:i:i], v.selectedNodes[i+1:]...)
	v.events.dispatch(EventSelectionChanged)
}

// IsSelected reports whether id is in the node selection
func (v *View) IsSelected(id domain.NodeID) bool {
	return indexOf(v.selectedNodes, id) >= 0
}

// SelectedConnections returns the selected connections in selection order
func (v *View) SelectedConnections() []domain.Connection {
	return append([]domain.Connection(nil), v.selectedConnections...)
}

// SetSelectedConnections replaces the connection selection. Duplicates are
// dropped and observers are always notified.
func (v *View) SetSelectedConnections(conns []domain.Connection) {
	v.selectedConnections = v.selectedConnections[:0:0]
	for _, c := range conns {
		if !containsLink(v.selectedConnections, c) {
			v.selectedConnections = append(v.selectedConnections, c)
		}
	}
	v.events.dispatch(EventSelectionChanged)
}

// IsConnectionSelected reports whether c, in either direction, is selected
func (v *View) IsConnectionSelected(c domain.Connection) bool {
	return containsLink(v.selectedConnections, c)
}

// ClearSelection drops both node and connection selections
func (v *View) ClearSelection() {
	v.selectedNodes = nil
	v.selectedConnections = nil
	v.events.dispatch(EventSelectionChanged)
}

func containsLink(conns []domain.Connection, c domain.Connection) bool {
	for _, x := range conns {
		if x.SameLink(c) {
			return true
		}
	}
	return false
}

// HoveredNode returns the node under the pointer
func (v *View) HoveredNode() (domain.NodeID, bool) {
	if v.hoveredNode == nil {
		return 0, false
	}
	return *v.hoveredNode, true
}

// SetHoveredNode marks id as hovered and clears any hovered connection
func (v *View) SetHoveredNode(id domain.NodeID) {
	if v.hoveredNode != nil && *v.hoveredNode == id && v.hoveredConnection == nil {
		return
	}
	v.hoveredNode = &id
	v.hoveredConnection = nil
	v.events.dispatch(EventHoverChanged)
}

// HoveredConnection returns the connection under the pointer
func (v *View) HoveredConnection() (domain.Connection, bool) {
	if v.hoveredConnection == nil {
		return domain.Connection{}, false
	}
	return *v.hoveredConnection, true
}

// SetHoveredConnection marks c as hovered and clears any hovered node
func (v *View) SetHoveredConnection(c domain.Connection) {
	if v.hoveredConnection != nil && *v.hoveredConnection == c && v.hoveredNode == nil {
		return
	}
	v.hoveredConnection = &c
	v.hoveredNode = nil
	v.events.dispatch(EventHoverChanged)
}

// ClearHover clears both hovered node and hovered connection
func (v *View) ClearHover() {
	if v.hoveredNode == nil && v.hoveredConnection == nil {
		return
	}
	v.hoveredNode = nil
	v.hoveredConnection = nil
	v.events.dispatch(EventHoverChanged)
}

// RenamedNode returns the node whose name is being edited
func (v *View) RenamedNode() (domain.NodeID, bool) {
	if v.renamedNode == nil {
		return 0, false
	}
	return *v.renamedNode, true
}

// SetRenamedNode starts editing id's name
func (v *View) SetRenamedNode(id domain.NodeID) {
	if v.renamedNode != nil && *v.renamedNode == id {
		return
	}
	v.renamedNode = &id
	v.events.dispatch(EventRenameChanged)
}

// ClearRenamedNode stops editing any name
func (v *View) ClearRenamedNode() {
	if v.renamedNode == nil {
		return
	}
	v.renamedNode = nil
	v.events.dispatch(EventRenameChanged)
}
