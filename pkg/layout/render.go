// Package layout defines the render-object boundary of the framework.
//
// The element tree in pkg/core owns render objects one-to-one through its
// RenderObjectElement family, but the actual layout and paint work happens
// on the render side. This package holds the interface the core programs
// against, plus an embeddable RenderBoxBase that concrete render boxes can
// build on.
package layout

import (
	"github.com/go-weft/weft/pkg/graphics"
)

// Constraints describes the size range a parent allows a child to occupy.
type Constraints struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// Tight returns constraints that force exactly the given size.
func Tight(size graphics.Size) Constraints {
	return Constraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// Loose returns constraints that allow any size up to the given size.
func Loose(size graphics.Size) Constraints {
	return Constraints{MaxWidth: size.Width, MaxHeight: size.Height}
}

// Constrain clamps a size into the constraint range.
func (c Constraints) Constrain(size graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  clamp(size.Width, c.MinWidth, c.MaxWidth),
		Height: clamp(size.Height, c.MinHeight, c.MaxHeight),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if hi > 0 && v > hi {
		return hi
	}
	return v
}

// RenderObject is one node of the external render tree.
//
// Implementations live outside the core; the element tree only creates
// them (via RenderObjectWidget), copies widget configuration onto them,
// and splices them into their parent. Child mutation is shape-specific
// and discovered by interface assertion: single-child render objects
// implement SetChild, multi-child ones implement SetChildren.
type RenderObject interface {
	Layout(constraints Constraints)
	Size() graphics.Size
	ParentData() any
	SetParentData(data any)
	Parent() RenderObject
	SetParent(parent RenderObject)
	MarkNeedsLayout()
	MarkNeedsPaint()
	SetOwner(owner *PipelineOwner)
}

// SingleChildRenderObject accepts at most one child render object.
type SingleChildRenderObject interface {
	RenderObject
	Child() RenderObject
	SetChild(child RenderObject)
}

// MultiChildRenderObject holds an ordered list of child render objects.
type MultiChildRenderObject interface {
	RenderObject
	Children() []RenderObject
	SetChildren(children []RenderObject)
}

// ChildVisitor is implemented by render objects that have children.
type ChildVisitor interface {
	VisitChildren(visitor func(RenderObject))
}

// BoxParentData stores the paint offset a parent assigns to a child.
type BoxParentData struct {
	Offset graphics.Offset
}

// RenderBoxBase provides the bookkeeping shared by box render objects:
// size, parent data, the parent back-reference, and the dirty flags that
// feed the PipelineOwner.
type RenderBoxBase struct {
	size        graphics.Size
	parentData  any
	parent      RenderObject
	owner       *PipelineOwner
	self        RenderObject
	needsLayout bool
	needsPaint  bool
}

// Init records the outer render object so scheduling can reference it.
// Concrete render boxes call this once from their constructor.
func (r *RenderBoxBase) Init(self RenderObject) {
	r.self = self
}

// Size returns the size set by the last layout pass.
func (r *RenderBoxBase) Size() graphics.Size {
	return r.size
}

// SetSize records the laid-out size. A size change dirties paint since the
// recorded content is stale at the new extent.
func (r *RenderBoxBase) SetSize(size graphics.Size) {
	if r.size == size {
		return
	}
	r.size = size
	r.MarkNeedsPaint()
}

// ParentData returns the parent-assigned data for this render box.
func (r *RenderBoxBase) ParentData() any {
	return r.parentData
}

// SetParentData assigns parent-controlled data to this render box.
func (r *RenderBoxBase) SetParentData(data any) {
	r.parentData = data
}

// Parent returns the parent render object, or nil at the render root.
func (r *RenderBoxBase) Parent() RenderObject {
	return r.parent
}

// SetParent records the parent back-reference. The element tree calls this
// when splicing the render object in or out of the render tree.
func (r *RenderBoxBase) SetParent(parent RenderObject) {
	r.parent = parent
}

// SetOwner wires the pipeline owner used for layout/paint scheduling.
func (r *RenderBoxBase) SetOwner(owner *PipelineOwner) {
	r.owner = owner
}

// Owner returns the pipeline owner, or nil if unattached.
func (r *RenderBoxBase) Owner() *PipelineOwner {
	return r.owner
}

// MarkNeedsLayout flags this render box and schedules it with the owner.
func (r *RenderBoxBase) MarkNeedsLayout() {
	if r.needsLayout {
		return
	}
	r.needsLayout = true
	r.needsPaint = true
	if r.owner != nil && r.self != nil {
		r.owner.ScheduleLayout(r.self)
	}
}

// MarkNeedsPaint flags this render box and schedules it with the owner.
func (r *RenderBoxBase) MarkNeedsPaint() {
	if r.needsPaint {
		return
	}
	r.needsPaint = true
	if r.owner != nil && r.self != nil {
		r.owner.SchedulePaint(r.self)
	}
}

// ClearNeedsLayout resets the layout dirty flag after a layout pass.
func (r *RenderBoxBase) ClearNeedsLayout() {
	r.needsLayout = false
}

// NeedsLayout reports whether this box is waiting for a layout pass.
func (r *RenderBoxBase) NeedsLayout() bool {
	return r.needsLayout
}
