package core

import (
	"fmt"
	"reflect"
)

// CheckTreeInvariants walks the live element tree below root and verifies
// the structural invariants the reconciler maintains:
//
//   - every element is mounted
//   - every element's depth is its parent's depth plus one
//   - every non-root element has a non-nil slot
//
// It returns the first violation found, or nil. This is the explicit
// verification layer: the same invariants the debug assertions guard are
// checkable here regardless of [DebugMode], so tests can assert them after
// arbitrary mutations.
func CheckTreeInvariants(root Element) error {
	if root == nil {
		return nil
	}
	if root.Lifecycle() != LifecycleMounted {
		return fmt.Errorf("root element %s is %s, want mounted", describeElement(root), root.Lifecycle())
	}
	return checkSubtree(root)
}

func checkSubtree(parent Element) error {
	var firstErr error
	parent.VisitChildren(func(child Element) bool {
		if err := checkChild(parent, child); err != nil {
			firstErr = err
			return false
		}
		if err := checkSubtree(child); err != nil {
			firstErr = err
			return false
		}
		return true
	})
	return firstErr
}

func checkChild(parent, child Element) error {
	if child.Lifecycle() != LifecycleMounted {
		return fmt.Errorf("element %s is %s, want mounted", describeElement(child), child.Lifecycle())
	}
	if got, want := child.Depth(), parent.Depth()+1; got != want {
		return fmt.Errorf("element %s has depth %d, want %d (parent depth %d)",
			describeElement(child), got, want, parent.Depth())
	}
	if child.Slot() == nil {
		return fmt.Errorf("mounted non-root element %s has nil slot", describeElement(child))
	}
	return nil
}

func describeElement(element Element) string {
	widget := element.Widget()
	if widget == nil {
		return reflect.TypeOf(element).String()
	}
	return fmt.Sprintf("%s(%s)", reflect.TypeOf(element).String(), reflect.TypeOf(widget).String())
}
