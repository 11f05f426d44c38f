package core

// Kind tags what an entity is and how touching it is resolved.
type Kind int

const (
	KindFood      Kind = iota // Catcher: catch for a point
	KindTrash                 // Catcher: lethal
	KindTreeUpper             // Dodger: lethal, hangs from the top
	KindTreeLower             // Dodger: lethal, grows from the bottom
	KindCloud                 // Hopper: lethal cell
	KindStep                  // Hopper: the one safe cell of a row
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindFood:
		return "food"
	case KindTrash:
		return "trash"
	case KindTreeUpper:
		return "tree_upper"
	case KindTreeLower:
		return "tree_lower"
	case KindCloud:
		return "cloud"
	case KindStep:
		return "step"
	default:
		return "unknown"
	}
}

// Lethal reports whether overlapping an entity of this kind ends the round.
func (k Kind) Lethal() bool {
	return k != KindFood && k != KindStep
}

// Entity is a bounding box with a kind tag.
// Variant selects one of several sprites for the same kind.
type Entity struct {
	Rect    Rect
	Kind    Kind
	Variant int
}
