package view

import (
	"fmt"
	"math"

	"abstracta/internal/domain"
)

// Settings returns the view's settings
func (v *View) Settings() Settings {
	return v.settings
}

// ViewportSize returns the viewport size in pixels
func (v *View) ViewportSize() domain.Size {
	return v.settings.ViewportSize
}

// SetViewportSize resizes the viewport. Cached positions are kept, so a resize
// does not re-centre a frame the user has panned.
func (v *View) SetViewportSize(size domain.Size) {
	if size == v.settings.ViewportSize {
		return
	}
	v.settings.ViewportSize = size
	v.events.dispatch(EventViewportChanged)
}

// ViewportPosition returns the model-space origin of frame's viewport, scaled by
// its zoom. The first access centres the viewport on the frame's children and
// caches the result; a frame without positioned children yields (0,0) uncached.
// SetRectangleInViewport caches whatever origin it used, so after a direct
// write the origin stays fixed, even at (0,0), until the frame is displayed
// again or fitted.
func (v *View) ViewportPosition(frame domain.NodeID) domain.Point {
	if p, ok := v.positions[frame]; ok {
		return p
	}
	box, ok := domain.BoundingBox(v.model.ChildRectangles(frame))
	if !ok {
		return domain.Point{}
	}
	p := box.Center().Scale(v.Zoom(frame)).Sub(v.settings.ViewportSize.Half())
	v.positions[frame] = p
	return p
}

// SetViewportPosition overrides frame's viewport origin
func (v *View) SetViewportPosition(frame domain.NodeID, p domain.Point) {
	if cur, ok := v.positions[frame]; ok && cur == p {
		return
	}
	v.positions[frame] = p
	v.events.dispatch(EventViewportChanged)
}

// Pan moves frame's viewport by a pixel delta, as when dragging the canvas
func (v *View) Pan(frame domain.NodeID, delta domain.Point) {
	v.SetViewportPosition(frame, v.ViewportPosition(frame).Sub(delta))
}

// Zoom returns frame's zoom factor, 1 until set
func (v *View) Zoom(frame domain.NodeID) float64 {
	if z, ok := v.zooms[frame]; ok {
		return z
	}
	return 1
}

// SetZoom overrides frame's zoom factor. The viewport origin is left as is.
func (v *View) SetZoom(frame domain.NodeID, zoom float64) error {
	if zoom <= 0 || math.IsNaN(zoom) || math.IsInf(zoom, 0) {
		return fmt.Errorf("set zoom %v: %w", zoom, ErrInvalidZoom)
	}
	if cur, ok := v.zooms[frame]; ok && cur == zoom {
		return nil
	}
	v.zooms[frame] = zoom
	v.events.dispatch(EventViewportChanged)
	return nil
}

// ZoomAt multiplies frame's zoom by factor while keeping the model point under
// the screen pivot in place, as when zooming with the mouse wheel
func (v *View) ZoomAt(frame domain.NodeID, factor float64, pivot domain.Point) error {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return fmt.Errorf("zoom by %v: %w", factor, ErrInvalidZoom)
	}
	anchor := v.ToModel(frame, pivot)
	zoom := v.Zoom(frame) * factor

	v.zooms[frame] = zoom
	v.positions[frame] = anchor.Scale(zoom).Sub(pivot)
	v.events.dispatch(EventViewportChanged)
	return nil
}

// ToViewport maps a model-space point of frame to viewport pixels
func (v *View) ToViewport(frame domain.NodeID, p domain.Point) domain.Point {
	return p.Scale(v.Zoom(frame)).Sub(v.ViewportPosition(frame))
}

// ToModel maps viewport pixels to a model-space point of frame
func (v *View) ToModel(frame domain.NodeID, p domain.Point) domain.Point {
	return p.Add(v.ViewportPosition(frame)).Scale(1 / v.Zoom(frame))
}

// RectangleInViewport returns id's rectangle in frame mapped to viewport pixels
func (v *View) RectangleInViewport(id, frame domain.NodeID) (domain.Rect, error) {
	r, err := v.model.Rectangle(id, frame)
	if err != nil {
		return domain.Rect{}, err
	}
	return v.toViewportRect(r, frame), nil
}

// DisplayedRectangle is RectangleInViewport for the displayed frame
func (v *View) DisplayedRectangle(id domain.NodeID) (domain.Rect, error) {
	return v.RectangleInViewport(id, v.displayed)
}

func (v *View) toViewportRect(r domain.Rect, frame domain.NodeID) domain.Rect {
	zoom := v.Zoom(frame)
	origin := v.ViewportPosition(frame)
	return domain.R(r.X*zoom-origin.X, r.Y*zoom-origin.Y, r.W*zoom, r.H*zoom)
}

// SetRectangleInViewport stores a rectangle given in viewport pixels. The
// position is snapped to the grid in model space. The frame's viewport origin is
// pinned first so the write cannot move the view under the pointer.
func (v *View) SetRectangleInViewport(id domain.NodeID, screen domain.Rect, frame domain.NodeID) error {
	zoom := v.Zoom(frame)
	origin := v.ViewportPosition(frame)
	v.positions[frame] = origin
	r := domain.R(
		v.Snap((screen.X+origin.X)/zoom),
		v.Snap((screen.Y+origin.Y)/zoom),
		screen.W/zoom,
		screen.H/zoom,
	)
	return v.model.SetRectangle(id, r, frame)
}

// Snap rounds x to the nearest grid line
func (v *View) Snap(x float64) float64 {
	g := v.settings.GridSize
	return math.Round(x/g) * g
}

// Fit re-centres frame's viewport on its children at the current zoom
func (v *View) Fit(frame domain.NodeID) {
	delete(v.positions, frame)
	v.ViewportPosition(frame)
	v.events.dispatch(EventViewportChanged)
}
