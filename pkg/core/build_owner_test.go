package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingState appends its widget's tag to a shared log on every build.
type recordingState struct {
	StateBase
	log *[]string
	tag string
}

func (s *recordingState) Build(ctx BuildContext) Widget {
	*s.log = append(*s.log, s.tag)
	w := s.Element().Widget().(recordingWidget)
	if len(w.children) == 0 {
		return nil
	}
	if len(w.children) == 1 {
		return w.children[0]
	}
	return testMultiChildWidget{childWidgets: w.children}
}

type recordingWidget struct {
	tag      string
	log      *[]string
	children []Widget
}

func (w recordingWidget) CreateElement() Element { return NewStatefulElement() }
func (w recordingWidget) Key() any               { return w.tag }
func (w recordingWidget) CreateState() State {
	return &recordingState{log: w.log, tag: w.tag}
}

func TestScheduleBuild_Deduplicates(t *testing.T) {
	owner := NewBuildOwner()
	element := mountTestRoot(testStatefulWidget{}, owner)

	owner.FlushBuild()
	require.Equal(t, 0, owner.DirtyCount())

	element.MarkNeedsBuild()
	element.MarkNeedsBuild()
	element.MarkNeedsBuild()

	assert.Equal(t, 1, owner.DirtyCount(), "repeated MarkNeedsBuild should schedule once")
}

func TestFlushBuild_RebuildsExactlyOnce(t *testing.T) {
	var log []string
	owner := NewBuildOwner()
	element := mountTestRoot(recordingWidget{tag: "root", log: &log}, owner).(*StatefulElement)
	owner.FlushBuild()
	log = nil

	// An event outside the build phase dirties the element once; the next
	// flush rebuilds it once and empties the set.
	element.State().SetState(nil)

	require.Equal(t, 1, owner.DirtyCount())
	owner.FlushBuild()

	assert.Equal(t, []string{"root"}, log)
	assert.Equal(t, 0, owner.DirtyCount())
}

func TestFlushBuild_DepthOrder(t *testing.T) {
	var log []string
	owner := NewBuildOwner()

	root := mountTestRoot(recordingWidget{tag: "parent", log: &log, children: []Widget{
		recordingWidget{tag: "child", log: &log, children: []Widget{
			recordingWidget{tag: "grandchild", log: &log},
		}},
	}}, owner).(*StatefulElement)
	owner.FlushBuild()
	log = nil

	child := root.child.(*StatefulElement)
	grandchild := child.child.(*StatefulElement)

	// Dirty deepest first; the flush must still run parents before children.
	grandchild.MarkNeedsBuild()
	child.MarkNeedsBuild()
	root.MarkNeedsBuild()

	owner.FlushBuild()

	require.GreaterOrEqual(t, len(log), 3)
	assert.Equal(t, []string{"parent", "child", "grandchild"}, log[:3])
}

func TestFlushBuild_FixedPoint(t *testing.T) {
	var log []string
	owner := NewBuildOwner()
	root := mountTestRoot(recordingWidget{tag: "a", log: &log, children: []Widget{
		recordingWidget{tag: "b", log: &log},
	}}, owner).(*StatefulElement)
	owner.FlushBuild()
	log = nil

	child := root.child.(*StatefulElement)

	// Rebuilding the parent replaces the child's widget; the child may be
	// dirtied during the flush and must still be processed before it ends.
	root.MarkNeedsBuild()
	child.MarkNeedsBuild()
	owner.FlushBuild()

	assert.Equal(t, 0, owner.DirtyCount(), "flush must reach a fixed point")
	assert.Contains(t, log, "a")
	assert.Contains(t, log, "b")
}

func TestFlushBuild_SkipsUnmounted(t *testing.T) {
	var log []string
	owner := NewBuildOwner()
	element := mountTestRoot(recordingWidget{tag: "gone", log: &log}, owner)
	owner.FlushBuild()
	log = nil

	element.MarkNeedsBuild()
	element.Unmount()
	owner.FlushBuild()

	assert.Empty(t, log, "defunct elements must not rebuild")
	assert.Equal(t, 0, owner.DirtyCount())
}

func TestOnNeedsFrame_OncePerTransition(t *testing.T) {
	var frames int
	owner := NewBuildOwner()
	owner.OnNeedsFrame = func() { frames++ }

	root := mountTestRoot(testMultiChildWidget{childWidgets: []Widget{
		testStatefulWidget{},
		testStatefulWidget{},
	}}, owner).(*MultiChildRenderObjectElement)
	owner.FlushBuild()
	frames = 0

	first := root.children[0]
	second := root.children[1]

	first.MarkNeedsBuild()
	second.MarkNeedsBuild()
	assert.Equal(t, 1, frames, "one signal per empty-to-non-empty transition")

	owner.FlushBuild()
	first.MarkNeedsBuild()
	assert.Equal(t, 2, frames, "a new transition after a flush signals again")
}

func TestBuildOwner_IndependentInstances(t *testing.T) {
	ownerA := NewBuildOwner()
	ownerB := NewBuildOwner()

	elementA := mountTestRoot(testStatefulWidget{}, ownerA)
	mountTestRoot(testStatefulWidget{}, ownerB)
	ownerA.FlushBuild()
	ownerB.FlushBuild()

	elementA.MarkNeedsBuild()

	assert.Equal(t, 1, ownerA.DirtyCount())
	assert.Equal(t, 0, ownerB.DirtyCount(), "owners must not share scheduler state")
	assert.NotSame(t, ownerA.Pipeline(), ownerB.Pipeline())
}

func TestFlushBuild_StatelessRebuildsOnce(t *testing.T) {
	owner := NewBuildOwner()

	builds := 0
	element := mountTestRoot(testStatelessWidget{
		buildFn: func(ctx BuildContext) Widget {
			builds++
			return nil
		},
	}, owner).(*StatelessElement)
	owner.FlushBuild()

	builds = 0
	element.MarkNeedsBuild()
	owner.FlushBuild()

	assert.Equal(t, 1, builds)
}
