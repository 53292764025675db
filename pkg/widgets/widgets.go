// Package widgets provides a small set of concrete render-object widgets:
// a leaf, a single-child wrapper and a multi-child container. They carry
// the element tree all the way into a real render tree and are what the
// demo CLI and the widget tests mount.
package widgets

import (
	"github.com/go-weft/weft/pkg/core"
	"github.com/go-weft/weft/pkg/graphics"
	"github.com/go-weft/weft/pkg/layout"
)

// Label is a leaf widget displaying a fixed-size run of text.
type Label struct {
	core.LeafRenderObjectBase
	Text      string
	WidgetKey any
}

// Key returns the widget's identity tag.
func (l Label) Key() any { return l.WidgetKey }

// CreateRenderObject returns a render box sized to the label text.
func (l Label) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	box := &renderLabel{}
	box.Init(box)
	box.text = l.Text
	return box
}

// UpdateRenderObject copies the label text onto an existing render box.
func (l Label) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	box := renderObject.(*renderLabel)
	if box.text != l.Text {
		box.text = l.Text
		box.MarkNeedsLayout()
	}
}

// renderLabel lays out as a box wide enough for its text at a nominal
// glyph advance. Real text shaping belongs to the host render layer.
type renderLabel struct {
	layout.RenderBoxBase
	text string
}

const (
	glyphAdvance = 8
	lineHeight   = 16
)

func (r *renderLabel) Layout(constraints layout.Constraints) {
	r.SetSize(constraints.Constrain(graphics.Size{
		Width:  float64(len(r.text)) * glyphAdvance,
		Height: lineHeight,
	}))
	r.ClearNeedsLayout()
}

// Padding insets a single child on all sides.
type Padding struct {
	core.SingleChildRenderObjectBase
	Inset     float64
	Child     core.Widget
	WidgetKey any
}

// Key returns the widget's identity tag.
func (p Padding) Key() any { return p.WidgetKey }

// ChildWidget returns the wrapped widget.
func (p Padding) ChildWidget() core.Widget { return p.Child }

// CreateRenderObject returns a render box applying the inset.
func (p Padding) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	box := &renderPadding{}
	box.Init(box)
	box.inset = p.Inset
	return box
}

// UpdateRenderObject copies the inset onto an existing render box.
func (p Padding) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	box := renderObject.(*renderPadding)
	if box.inset != p.Inset {
		box.inset = p.Inset
		box.MarkNeedsLayout()
	}
}

type renderPadding struct {
	layout.RenderBoxBase
	inset float64
	child layout.RenderObject
}

func (r *renderPadding) Child() layout.RenderObject { return r.child }

func (r *renderPadding) SetChild(child layout.RenderObject) {
	r.child = child
	r.MarkNeedsLayout()
}

func (r *renderPadding) Layout(constraints layout.Constraints) {
	double := r.inset * 2
	if r.child == nil {
		r.SetSize(constraints.Constrain(graphics.Size{Width: double, Height: double}))
		r.ClearNeedsLayout()
		return
	}
	inner := layout.Constraints{
		MinWidth:  max(0, constraints.MinWidth-double),
		MaxWidth:  max(0, constraints.MaxWidth-double),
		MinHeight: max(0, constraints.MinHeight-double),
		MaxHeight: max(0, constraints.MaxHeight-double),
	}
	r.child.Layout(inner)
	r.child.SetParentData(&layout.BoxParentData{
		Offset: graphics.Offset{X: r.inset, Y: r.inset},
	})
	childSize := r.child.Size()
	r.SetSize(constraints.Constrain(graphics.Size{
		Width:  childSize.Width + double,
		Height: childSize.Height + double,
	}))
	r.ClearNeedsLayout()
}

func (r *renderPadding) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

// Column stacks its children vertically in order.
type Column struct {
	core.MultiChildRenderObjectBase
	Children  []core.Widget
	WidgetKey any
}

// Key returns the widget's identity tag.
func (c Column) Key() any { return c.WidgetKey }

// ChildWidgets returns the ordered child list.
func (c Column) ChildWidgets() []core.Widget { return c.Children }

// CreateRenderObject returns a render box stacking children vertically.
func (c Column) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	box := &renderColumn{}
	box.Init(box)
	return box
}

// UpdateRenderObject is a no-op: a Column has no configuration beyond its
// children, which the element tree maintains.
func (c Column) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {}

type renderColumn struct {
	layout.RenderBoxBase
	children []layout.RenderObject
}

func (r *renderColumn) Children() []layout.RenderObject { return r.children }

func (r *renderColumn) SetChildren(children []layout.RenderObject) {
	r.children = children
	r.MarkNeedsLayout()
}

func (r *renderColumn) Layout(constraints layout.Constraints) {
	loose := layout.Constraints{MaxWidth: constraints.MaxWidth}
	var width, height float64
	for _, child := range r.children {
		child.Layout(loose)
		child.SetParentData(&layout.BoxParentData{
			Offset: graphics.Offset{Y: height},
		})
		size := child.Size()
		height += size.Height
		if size.Width > width {
			width = size.Width
		}
	}
	r.SetSize(constraints.Constrain(graphics.Size{Width: width, Height: height}))
	r.ClearNeedsLayout()
}

func (r *renderColumn) VisitChildren(visitor func(layout.RenderObject)) {
	for _, child := range r.children {
		visitor(child)
	}
}
