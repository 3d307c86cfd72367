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

import "iter"

// InOrder calls visit for every value in ascending order.
func (tree *Tree[T]) InOrder(visit func(T)) {
	inOrder(tree.root, visit)
}

// PreOrder calls visit for every value, each node before its children.
func (tree *Tree[T]) PreOrder(visit func(T)) {
	preOrder(tree.root, visit)
}

// PostOrder calls visit for every value, each node after its children.
func (tree *Tree[T]) PostOrder(visit func(T)) {
	postOrder(tree.root, visit)
}

// Values returns all values in ascending order.
func (tree *Tree[T]) Values() []T {
	values := make([]T, 0, tree.size)
	tree.InOrder(func(v T) {
		values = append(values, v)
	})
	return values
}

// All returns an iterator over the values in ascending order. Each call to
// the returned sequence walks the tree from the root again.
func (tree *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		yieldInOrder(tree.root, yield)
	}
}

// PreOrderSeq is the pull-style form of PreOrder.
func (tree *Tree[T]) PreOrderSeq() iter.Seq[T] {
	return func(yield func(T) bool) {
		yieldPreOrder(tree.root, yield)
	}
}

// PostOrderSeq is the pull-style form of PostOrder.
func (tree *Tree[T]) PostOrderSeq() iter.Seq[T] {
	return func(yield func(T) bool) {
		yieldPostOrder(tree.root, yield)
	}
}

func inOrder[T any](node *Node[T], visit func(T)) {
	if node == nil {
		return
	}
	inOrder(node.left, visit)
	visit(node.value)
	inOrder(node.right, visit)
}

func preOrder[T any](node *Node[T], visit func(T)) {
	if node == nil {
		return
	}
	visit(node.value)
	preOrder(node.left, visit)
	preOrder(node.right, visit)
}

func postOrder[T any](node *Node[T], visit func(T)) {
	if node == nil {
		return
	}
	postOrder(node.left, visit)
	postOrder(node.right, visit)
	visit(node.value)
}

// The yield helpers return false once the consumer has stopped.

func yieldInOrder[T any](node *Node[T], yield func(T) bool) bool {
	if node == nil {
		return true
	}
	return yieldInOrder(node.left, yield) &&
		yield(node.value) &&
		yieldInOrder(node.right, yield)
}

func yieldPreOrder[T any](node *Node[T], yield func(T) bool) bool {
	if node == nil {
		return true
	}
	return yield(node.value) &&
		yieldPreOrder(node.left, yield) &&
		yieldPreOrder(node.right, yield)
}

func yieldPostOrder[T any](node *Node[T], yield func(T) bool) bool {
	if node == nil {
		return true
	}
	return yieldPostOrder(node.left, yield) &&
		yieldPostOrder(node.right, yield) &&
		yield(node.value)
}
