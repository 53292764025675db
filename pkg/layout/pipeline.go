package layout

// PipelineOwner tracks render objects that need layout or paint.
//
// The element tree's BuildOwner carries one of these and hands it to every
// render object it creates; render objects report dirtiness here and the
// host frame loop drains it after the build phase.
type PipelineOwner struct {
	dirtyLayout    []RenderObject
	dirtyLayoutSet map[RenderObject]bool
	dirtyPaint     map[RenderObject]struct{}
	needsLayout    bool
	needsPaint     bool
}

// ScheduleLayout marks a render object as needing layout.
func (p *PipelineOwner) ScheduleLayout(object RenderObject) {
	if p.dirtyLayoutSet == nil {
		p.dirtyLayoutSet = make(map[RenderObject]bool)
	}
	if p.dirtyLayoutSet[object] {
		return
	}
	p.dirtyLayoutSet[object] = true
	p.dirtyLayout = append(p.dirtyLayout, object)
	p.needsLayout = true
	p.needsPaint = true
}

// SchedulePaint marks a render object as needing paint.
func (p *PipelineOwner) SchedulePaint(object RenderObject) {
	if p.dirtyPaint == nil {
		p.dirtyPaint = make(map[RenderObject]struct{})
	}
	if _, exists := p.dirtyPaint[object]; exists {
		return
	}
	p.dirtyPaint[object] = struct{}{}
	p.needsPaint = true
}

// NeedsLayout reports if any render objects need layout.
func (p *PipelineOwner) NeedsLayout() bool {
	return p.needsLayout
}

// NeedsPaint reports if any render objects need paint.
func (p *PipelineOwner) NeedsPaint() bool {
	return p.needsPaint
}

// FlushLayout runs layout from the root with the given constraints and
// clears the layout dirty set. The typical frame sequence is FlushBuild on
// the BuildOwner, then FlushLayout here, then whatever paint the host does.
func (p *PipelineOwner) FlushLayout(root RenderObject, constraints Constraints) {
	if root == nil || !p.needsLayout {
		return
	}
	root.Layout(constraints)
	p.dirtyLayout = nil
	p.dirtyLayoutSet = nil
	p.needsLayout = false
}

// ClearPaint resets paint tracking once the host has painted a frame.
func (p *PipelineOwner) ClearPaint() {
	p.dirtyPaint = nil
	p.needsPaint = false
}
