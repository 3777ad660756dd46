package ir

import (
	clone "github.com/huandu/go-clone"
)

// Clone returns a deep copy of y sharing no memory with it.
func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	return clone.Clone(y).(*Node)
}
