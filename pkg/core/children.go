package core

// updateChildren reconciles an ordered list of children against a new list
// of widgets, preferring in-place reuse over tear-down.
//
// The sync strategy mirrors the classic list-diff shape: matching prefixes
// and suffixes are updated in place, and the disjoint middle is matched by
// key. Old middle children without a usable key are torn down immediately;
// keyed ones survive reordering. Keys with non-comparable dynamic types
// cannot index a map and are treated as unkeyed.
func updateChildren(parent Element, oldChildren []Element, newWidgets []Widget, owner *BuildOwner) []Element {
	newChildren := make([]Element, len(newWidgets))

	oldTop, newTop := 0, 0
	oldBottom, newBottom := len(oldChildren)-1, len(newWidgets)-1

	var previous Element

	// Sync the matching prefix in place.
	for oldTop <= oldBottom && newTop <= newBottom {
		old := oldChildren[oldTop]
		if old == nil || !CanUpdate(old.Widget(), newWidgets[newTop]) {
			break
		}
		child := updateChild(old, newWidgets[newTop], parent, owner,
			IndexedSlot{Index: newTop, PreviousSibling: previous})
		newChildren[newTop] = child
		previous = child
		oldTop++
		newTop++
	}

	// Scan the matching suffix without syncing yet; its slots depend on
	// how the middle resolves.
	for oldTop <= oldBottom && newTop <= newBottom {
		old := oldChildren[oldBottom]
		if old == nil || !CanUpdate(old.Widget(), newWidgets[newBottom]) {
			break
		}
		oldBottom--
		newBottom--
	}

	// Index the disjoint middle by key. Unkeyed old children there cannot
	// match anything and are torn down now.
	haveOldMiddle := oldTop <= oldBottom
	var oldKeyed map[any]Element
	if haveOldMiddle {
		oldKeyed = make(map[any]Element)
		for oldTop <= oldBottom {
			old := oldChildren[oldTop]
			oldTop++
			if old == nil {
				continue
			}
			key := old.Widget().Key()
			if key != nil && isComparable(key) {
				oldKeyed[key] = old
			} else {
				detachChild(old)
			}
		}
	}

	// Build the new middle, reusing keyed matches.
	for newTop <= newBottom {
		var old Element
		widget := newWidgets[newTop]
		if haveOldMiddle {
			if key := widget.Key(); key != nil && isComparable(key) {
				if candidate, ok := oldKeyed[key]; ok && CanUpdate(candidate.Widget(), widget) {
					old = candidate
					delete(oldKeyed, key)
				}
			}
		}
		child := updateChild(old, widget, parent, owner,
			IndexedSlot{Index: newTop, PreviousSibling: previous})
		newChildren[newTop] = child
		previous = child
		newTop++
	}

	// Sync the suffix now that every preceding slot is settled.
	oldBottom = len(oldChildren) - 1
	newBottom = len(newWidgets) - 1
	for oldTop <= oldBottom && newTop <= newBottom {
		child := updateChild(oldChildren[oldTop], newWidgets[newTop], parent, owner,
			IndexedSlot{Index: newTop, PreviousSibling: previous})
		newChildren[newTop] = child
		previous = child
		oldTop++
		newTop++
	}

	// Keyed old children nothing claimed.
	for _, old := range oldKeyed {
		detachChild(old)
	}

	return newChildren
}
