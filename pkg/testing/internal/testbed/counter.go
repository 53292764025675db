// Package testbed provides internal test widgets for the testing harness.
package testbed

import (
	"strconv"

	"github.com/go-weft/weft/pkg/core"
	"github.com/go-weft/weft/pkg/widgets"
)

// Counter is a stateful widget that displays a count inside padding.
// Tests bump it through Increment.
type Counter struct {
	core.StatefulBase
	Initial  int
	OnChange func(count int)
}

func (c Counter) CreateState() core.State {
	return &counterState{}
}

type counterState struct {
	core.StateBase
	count    int
	onChange func(int)
}

func (s *counterState) InitState() {
	w := s.Element().Widget().(Counter)
	s.count = w.Initial
	s.onChange = w.OnChange
}

func (s *counterState) Build(ctx core.BuildContext) core.Widget {
	return widgets.Padding{
		Inset: 4,
		Child: widgets.Label{Text: strconv.Itoa(s.count)},
	}
}

func (s *counterState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	if w, ok := s.Element().Widget().(Counter); ok {
		s.onChange = w.OnChange
	}
}

func (s *counterState) increment() {
	s.SetState(func() {
		s.count++
	})
	if s.onChange != nil {
		s.onChange(s.count)
	}
}

// Increment bumps the count on a mounted Counter element and schedules a
// rebuild. Panics if the element is not a Counter.
func Increment(element core.Element) {
	stateful := element.(*core.StatefulElement)
	stateful.State().(*counterState).increment()
}
