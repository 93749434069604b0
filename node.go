package pnet

// Node is a place or a transition.
type Node interface {
	Object
	IsNode()
}
