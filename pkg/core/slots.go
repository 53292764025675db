package core

// IndexedSlot is the slot a multi-child parent assigns to each child: the
// child's position plus the element preceding it, so render objects can be
// spliced in after their predecessor without rescanning the list.
type IndexedSlot struct {
	Index           int
	PreviousSibling Element
}

// uniqueChildSlotType is the distinguished slot for the only child of a
// single-child parent.
type uniqueChildSlotType struct{}

// UniqueChildSlot is the sentinel slot value single-child parents assign.
// It is also what the root element's immediate child receives, since the
// root itself was never assigned a slot.
var UniqueChildSlot any = uniqueChildSlotType{}
