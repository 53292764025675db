package core

import (
	"slices"
	"sync"

	"github.com/go-weft/weft/pkg/layout"
)

// BuildOwner tracks dirty elements that need rebuilding. It is an explicit
// scheduler context rather than process state: hosts and tests create as
// many independent owners as they need.
type BuildOwner struct {
	dirty    []Element
	dirtySet map[Element]bool
	pipeline *layout.PipelineOwner
	mu       sync.Mutex

	// OnNeedsFrame is called when the dirty set transitions from empty to
	// non-empty, signalling the host that visual work is pending. It fires
	// exactly once per transition: scheduling more elements while the set
	// is already non-empty stays silent.
	OnNeedsFrame func()
}

// NewBuildOwner creates a new BuildOwner with its own render pipeline.
func NewBuildOwner() *BuildOwner {
	return &BuildOwner{
		pipeline: &layout.PipelineOwner{},
	}
}

// Pipeline returns the PipelineOwner handed to every render object created
// under this owner.
func (b *BuildOwner) Pipeline() *layout.PipelineOwner {
	return b.pipeline
}

// ScheduleBuild adds an element to the dirty set. Elements already in the
// set are not added twice.
func (b *BuildOwner) ScheduleBuild(element Element) {
	b.mu.Lock()
	if b.dirtySet == nil {
		b.dirtySet = make(map[Element]bool)
	}
	if b.dirtySet[element] {
		b.mu.Unlock()
		return
	}
	wasIdle := len(b.dirty) == 0
	b.dirtySet[element] = true
	b.dirty = append(b.dirty, element)
	b.mu.Unlock()

	if wasIdle && b.OnNeedsFrame != nil {
		b.OnNeedsFrame()
	}
}

// DirtyCount returns the number of elements waiting for rebuild.
func (b *BuildOwner) DirtyCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.dirty)
}

// NeedsWork returns true if there are dirty elements or pending layout/paint.
func (b *BuildOwner) NeedsWork() bool {
	b.mu.Lock()
	hasDirty := len(b.dirty) > 0
	b.mu.Unlock()
	if hasDirty {
		return true
	}
	return b.pipeline.NeedsLayout() || b.pipeline.NeedsPaint()
}

// FlushBuild rebuilds all dirty elements in ascending depth order, so a
// parent's updated widget tree is in place before its descendants rebuild.
// Rebuilding may mark further elements dirty; the snapshot/sort/rebuild
// cycle repeats until the set reaches a fixed point. The set is empty on
// both entry and exit of an idle flush.
func (b *BuildOwner) FlushBuild() {
	for {
		b.mu.Lock()
		if len(b.dirty) == 0 {
			b.mu.Unlock()
			return
		}

		slices.SortStableFunc(b.dirty, func(a, b Element) int {
			return a.Depth() - b.Depth()
		})

		dirty := b.dirty
		b.dirty = nil
		clear(b.dirtySet)
		b.mu.Unlock()

		for _, element := range dirty {
			if element.Lifecycle() != LifecycleMounted {
				continue
			}
			element.RebuildIfNeeded()
		}
	}
}
