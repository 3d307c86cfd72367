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

import "cmp"

// Tree is an AVL tree of distinct values ordered by a three-way comparison.
// It is not safe for concurrent use; callers must serialise access.
type Tree[T any] struct {
	root    *Node[T]
	size    int
	compare func(a, b T) int
}

// New returns an empty tree ordered by the natural order of T.
func New[T cmp.Ordered]() *Tree[T] {
	return NewFunc(cmp.Compare[T])
}

// NewFunc returns an empty tree ordered by compare, which must return a
// negative number when a < b, zero when a == b and a positive number when a > b.
func NewFunc[T any](compare func(a, b T) int) *Tree[T] {
	return &Tree[T]{compare: compare}
}

// NewFromValue returns a tree holding the single value seed.
func NewFromValue[T cmp.Ordered](seed T) *Tree[T] {
	tree := New[T]()
	tree.Add(seed)
	return tree
}

// NewFromSlice adds values to a new tree one at a time, in slice order.
func NewFromSlice[T cmp.Ordered](values []T) *Tree[T] {
	return NewFromSliceFunc(values, cmp.Compare[T])
}

// NewFromSliceFunc is NewFromSlice with a custom ordering.
func NewFromSliceFunc[T any](values []T, compare func(a, b T) int) *Tree[T] {
	tree := NewFunc(compare)
	for _, v := range values {
		tree.Add(v)
	}
	return tree
}

// Root returns the root node, or nil for an empty tree.
func (tree *Tree[T]) Root() *Node[T] {
	return tree.root
}

// Len returns the number of values in the tree.
func (tree *Tree[T]) Len() int {
	return tree.size
}

// IsEmpty reports whether the tree holds no values.
func (tree *Tree[T]) IsEmpty() bool {
	return tree.root == nil
}

// Height returns the height of the root, 0 for an empty tree.
func (tree *Tree[T]) Height() int {
	return tree.root.Height()
}

// Clear drops every value.
func (tree *Tree[T]) Clear() {
	tree.root = nil
	tree.size = 0
}

func (tree *Tree[T]) lessThan(value T, node *Node[T]) bool {
	return node != nil && tree.compare(value, node.value) < 0
}

func (tree *Tree[T]) greaterThan(value T, node *Node[T]) bool {
	return node != nil && tree.compare(value, node.value) > 0
}

// Add inserts value. A value equal to one already stored is ignored.
func (tree *Tree[T]) Add(value T) {
	tree.root = tree.insertRecursive(tree.root, value)
}

func (tree *Tree[T]) insertRecursive(node *Node[T], value T) *Node[T] {
	if node == nil {
		tree.size++
		return newNode(value)
	}

	if tree.lessThan(value, node) {
		node.left = tree.insertRecursive(node.left, value)
		node.updateHeight()
		if node.Balance() > 1 {
			if tree.lessThan(value, node.left) {
				return rotateRight(node)
			}
			return rotateLeftRight(node)
		}
	} else if tree.greaterThan(value, node) {
		node.right = tree.insertRecursive(node.right, value)
		node.updateHeight()
		if node.Balance() < -1 {
			if tree.greaterThan(value, node.right) {
				return rotateLeft(node)
			}
			return rotateRightLeft(node)
		}
	}
	// Equal values leave the node untouched.

	return node
}

// Remove deletes value from the tree. Removing an absent value is a no-op.
func (tree *Tree[T]) Remove(value T) {
	tree.root = tree.deleteRecursive(tree.root, value)
}

func (tree *Tree[T]) deleteRecursive(node *Node[T], value T) *Node[T] {
	if node == nil {
		return nil // Value not found
	}

	if tree.lessThan(value, node) {
		node.left = tree.deleteRecursive(node.left, value)
	} else if tree.greaterThan(value, node) {
		node.right = tree.deleteRecursive(node.right, value)
	} else {
		// At most one child: splice it in
		if node.right == nil {
			tree.size--
			return node.left
		}
		if node.left == nil {
			tree.size--
			return node.right
		}
		// Two children: take over the in-order successor's value, then
		// remove the successor from the right subtree.
		successor := minNode(node.right)
		node.value = successor.value
		node.right = tree.deleteRecursive(node.right, successor.value)
	}

	node.updateHeight()
	return rebalance(node)
}

func rebalance[T any](node *Node[T]) *Node[T] {
	balance := node.Balance()

	// Right-heavy
	if balance < -1 {
		if node.right.Balance() > 0 {
			return rotateRightLeft(node)
		}
		return rotateLeft(node)
	}

	// Left-heavy
	if balance > 1 {
		if node.left.Balance() < 0 {
			return rotateLeftRight(node)
		}
		return rotateRight(node)
	}

	return node
}

// Find returns the node holding a value equal to value, or nil.
func (tree *Tree[T]) Find(value T) *Node[T] {
	node := tree.root
	for node != nil {
		switch c := tree.compare(value, node.value); {
		case c < 0:
			node = node.left
		case c > 0:
			node = node.right
		default:
			return node
		}
	}
	return nil
}

// Contains reports whether a value equal to value is stored.
func (tree *Tree[T]) Contains(value T) bool {
	return tree.Find(value) != nil
}

// Min returns the smallest value, or ErrEmptyTree.
func (tree *Tree[T]) Min() (T, error) {
	if tree.root == nil {
		var zero T
		return zero, ErrEmptyTree
	}
	return minNode(tree.root).value, nil
}

// Max returns the largest value, or ErrEmptyTree.
func (tree *Tree[T]) Max() (T, error) {
	if tree.root == nil {
		var zero T
		return zero, ErrEmptyTree
	}
	return maxNode(tree.root).value, nil
}

func minNode[T any](node *Node[T]) *Node[T] {
	for node.left != nil {
		node = node.left
	}
	return node
}

func maxNode[T any](node *Node[T]) *Node[T] {
	for node.right != nil {
		node = node.right
	}
	return node
}
