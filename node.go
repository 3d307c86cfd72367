// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package avl

// Node is a single element of a Tree. A node is owned by its parent (or by
// the tree for the root) and is never shared between trees.
type Node[T any] struct {
	value  T
	height int
	left   *Node[T]
	right  *Node[T]
}

func newNode[T any](value T) *Node[T] {
	return &Node[T]{value: value, height: 1}
}

// Value returns the element stored in the node.
func (n *Node[T]) Value() T {
	return n.value
}

// Left returns the left child, or nil.
func (n *Node[T]) Left() *Node[T] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child, or nil.
func (n *Node[T]) Right() *Node[T] {
	if n == nil {
		return nil
	}
	return n.right
}

// Height is 0 for a nil node and 1 for a leaf.
func (n *Node[T]) Height() int {
	if n == nil {
		return 0
	}
	return n.height
}

// Balance returns height(left) - height(right).
func (n *Node[T]) Balance() int {
	if n == nil {
		return 0
	}
	return n.left.Height() - n.right.Height()
}

func (n *Node[T]) updateHeight() {
	n.height = max(n.left.Height(), n.right.Height()) + 1
}
