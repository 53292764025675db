package testing

import (
	"errors"
	"testing"

	"github.com/go-weft/weft/pkg/core"
	"github.com/go-weft/weft/pkg/graphics"
	"github.com/go-weft/weft/pkg/layout"
)

const (
	// DefaultTestWidth is the default logical width for the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default logical height for the test surface.
	DefaultTestHeight = 600
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its frame budget.
var ErrSettleTimeout = errors.New("PumpAndSettle: tree did not settle")

// WidgetTester provides isolated widget testing without a real host.
// It drives the same build and layout phases a host frame loop would,
// against an in-memory render tree.
type WidgetTester struct {
	buildOwner *core.BuildOwner
	root       core.Element
	rootRender layout.RenderObject
	size       graphics.Size
	frames     int
}

// NewWidgetTester creates a tester with the default surface size.
// Call Cleanup() when done, or use NewWidgetTesterWithT() instead.
func NewWidgetTester() *WidgetTester {
	return &WidgetTester{
		buildOwner: core.NewBuildOwner(),
		size:       graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
	}
}

// NewWidgetTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewWidgetTesterWithT(t *testing.T) *WidgetTester {
	tester := NewWidgetTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts the current tree, if any.
func (t *WidgetTester) Cleanup() {
	if t.root != nil {
		t.root.DetachRenderObject()
		t.root.Unmount()
		t.root = nil
		t.rootRender = nil
	}
}

// SetSize sets the logical surface size. Must be called before PumpWidget.
func (t *WidgetTester) SetSize(size graphics.Size) {
	t.size = size
}

// Owner returns the tester's build owner.
func (t *WidgetTester) Owner() *core.BuildOwner {
	return t.buildOwner
}

// FrameCount returns the number of frames pumped so far.
func (t *WidgetTester) FrameCount() int {
	return t.frames
}

// PumpWidget makes widget the root of the tree and runs one full frame.
// When the new widget can update the current root in place the existing
// tree is reconciled; otherwise the old tree is torn down and a fresh one
// mounted.
func (t *WidgetTester) PumpWidget(widget core.Widget) error {
	if t.root != nil && core.CanUpdate(t.root.Widget(), widget) {
		t.root.Update(widget)
		return t.Pump()
	}

	if t.root != nil {
		t.root.DetachRenderObject()
		t.root.Unmount()
		t.root = nil
		t.rootRender = nil
	}

	t.root = core.MountRoot(widget, t.buildOwner)
	t.rootRender = extractRenderObject(t.root)

	if t.rootRender != nil {
		t.buildOwner.Pipeline().ScheduleLayout(t.rootRender)
	}
	return t.Pump()
}

// Pump runs a single frame cycle: build, then layout.
func (t *WidgetTester) Pump() error {
	t.frames++
	t.buildOwner.FlushBuild()

	if t.rootRender == nil {
		t.rootRender = extractRenderObject(t.root)
	}
	if t.rootRender != nil {
		pipeline := t.buildOwner.Pipeline()
		pipeline.FlushLayout(t.rootRender, layout.Tight(t.size))
		pipeline.ClearPaint()
	}
	return nil
}

// PumpAndSettle runs frames until the tree is idle or maxFrames is
// exceeded. Returns ErrSettleTimeout if the tree keeps scheduling work.
func (t *WidgetTester) PumpAndSettle(maxFrames int) error {
	for i := 0; i < maxFrames; i++ {
		if err := t.Pump(); err != nil {
			return err
		}
		if !t.buildOwner.NeedsWork() {
			return nil
		}
	}
	return ErrSettleTimeout
}

// RootElement returns the root element of the mounted tree.
func (t *WidgetTester) RootElement() core.Element {
	return t.root
}

// RootRenderObject returns the root render object of the mounted tree.
func (t *WidgetTester) RootRenderObject() layout.RenderObject {
	return t.rootRender
}

// Find evaluates a finder against the current element tree.
func (t *WidgetTester) Find(finder Finder) FinderResult {
	if t.root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{
		elements: finder.Evaluate(t.root),
		finder:   finder,
	}
}

// extractRenderObject walks from an element to find its render object.
func extractRenderObject(e core.Element) layout.RenderObject {
	if e == nil {
		return nil
	}
	if ro, ok := e.(interface{ RenderObject() layout.RenderObject }); ok {
		return ro.RenderObject()
	}
	return nil
}
