// Package view holds the editor's view model: which frame is displayed, where
// each frame's viewport sits, selection, hover and rename state, and the
// transforms between model space and viewport pixels.
//
// A View reads all geometry from its model and keeps no copy of it. It listens
// to the model so that transient state never refers to a destroyed node.
package view

import (
	"errors"
	"fmt"

	"abstracta/internal/domain"
	"abstracta/internal/model"
)

const (
	// DefaultGridSize is the spacing positions snap to on direct manipulation
	DefaultGridSize = 10
	DefaultWidth    = 1000
	DefaultHeight   = 1000
)

var (
	// ErrInvalidZoom is returned for a zoom factor that is not positive
	ErrInvalidZoom = errors.New("zoom must be positive")
)

// Settings configures a View
type Settings struct {
	GridSize     float64
	ViewportSize domain.Size
}

// DefaultSettings returns a 10 unit grid and a 1000x1000 viewport
func DefaultSettings() Settings {
	return Settings{
		GridSize:     DefaultGridSize,
		ViewportSize: domain.Size{W: DefaultWidth, H: DefaultHeight},
	}
}

// View is the view model over a graph model. The model is shared, not owned.
type View struct {
	model    *model.Model
	settings Settings

	displayed domain.NodeID
	// per-frame caches; a missing entry is recomputed on next access
	positions map[domain.NodeID]domain.Point
	zooms     map[domain.NodeID]float64

	selectedNodes       []domain.NodeID
	selectedConnections []domain.Connection
	hoveredNode         *domain.NodeID
	hoveredConnection   *domain.Connection
	renamedNode         *domain.NodeID

	events      dispatcher
	unsubscribe func()
}

// New creates a view displaying the root frame and subscribes it to m
func New(m *model.Model, settings Settings) *View {
	if settings.GridSize <= 0 {
		settings.GridSize = DefaultGridSize
	}
	if settings.ViewportSize.W <= 0 || settings.ViewportSize.H <= 0 {
		settings.ViewportSize = domain.Size{W: DefaultWidth, H: DefaultHeight}
	}
	v := &View{
		model:     m,
		settings:  settings,
		displayed: domain.RootID,
		positions: make(map[domain.NodeID]domain.Point),
		zooms:     make(map[domain.NodeID]float64),
	}
	v.unsubscribe = m.Subscribe(v)
	return v
}

// Close detaches the view from its model
func (v *View) Close() {
	if v.unsubscribe != nil {
		v.unsubscribe()
		v.unsubscribe = nil
	}
}

// Model returns the underlying graph model
func (v *View) Model() *model.Model {
	return v.model
}

// Subscribe registers an observer and returns a function that removes it
func (v *View) Subscribe(o Observer) func() {
	return v.events.subscribe(o)
}

// Displayed returns the frame whose children are currently shown
func (v *View) Displayed() domain.NodeID {
	return v.displayed
}

// SetDisplayedParent switches the displayed frame. The frame's cached viewport
// position and zoom are dropped so entering it re-centres the view.
func (v *View) SetDisplayedParent(id domain.NodeID) error {
	if !v.model.Exists(id) {
		return fmt.Errorf("display %d: %w", id, model.ErrUnknownNode)
	}
	v.displayed = id
	v.invalidate(id)
	v.events.dispatch(EventDisplayedFrameChanged)
	return nil
}

// Enter displays the inner graph of id, the usual double-click navigation
func (v *View) Enter(id domain.NodeID) error {
	return v.SetDisplayedParent(id)
}

// Leave displays the parent of the current frame. It reports false at the root.
func (v *View) Leave() bool {
	parent, ok := v.model.Parent(v.displayed)
	if !ok {
		return false
	}
	// parent comes from the model, so it exists
	_ = v.SetDisplayedParent(parent)
	return true
}

func (v *View) invalidate(frame domain.NodeID) {
	delete(v.positions, frame)
	delete(v.zooms, frame)
}

// HandleModelEvent keeps transient state consistent with the model
func (v *View) HandleModelEvent(e model.Event) {
	switch e.Type {
	case model.EventNodeDestroyed:
		v.forgetNode(e.Node)
	case model.EventConnectionRemoved:
		v.forgetConnection(e.Connection)
	}
}

func (v *View) forgetNode(id domain.NodeID) {
	var changed []EventType
	v.invalidate(id)

	if v.displayed == id {
		v.displayed = domain.RootID
		v.invalidate(domain.RootID)
		changed = append(changed, EventDisplayedFrameChanged)
	}
	if i := indexOf(v.selectedNodes, id); i >= 0 {
		v.selectedNodes = append(v.selectedNodes[:i:i], v.selectedNodes[i+1:]...)
		changed = append(changed, EventSelectionChanged)
	}
	if v.hoveredNode != nil && *v.hoveredNode == id {
		v.hoveredNode = nil
		changed = append(changed, EventHoverChanged)
	}
	if v.renamedNode != nil && *v.renamedNode == id {
		v.renamedNode = nil
		changed = append(changed, EventRenameChanged)
	}
	v.events.dispatch(changed...)
}

func (v *View) forgetConnection(c domain.Connection) {
	var changed []EventType
	if v.hoveredConnection != nil && *v.hoveredConnection == c {
		v.hoveredConnection = nil
		changed = append(changed, EventHoverChanged)
	}
	kept := v.selectedConnections[:0]
	for _, s := range v.selectedConnections {
		if s != c {
			kept = append(kept, s)
		}
	}
	if len(kept) != len(v.selectedConnections) {
		changed = append(changed, EventSelectionChanged)
	}
	v.selectedConnections = kept
	v.events.dispatch(changed...)
}

func indexOf(ids []domain.NodeID, id domain.NodeID) int {
	for i, x := range ids {
		if x == id {
			return i
		}
	}
	return -1
}
