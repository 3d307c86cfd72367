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

// rotateRight promotes node.left to the subtree root and returns it.
func rotateRight[T any](node *Node[T]) *Node[T] {
	if node == nil || node.left == nil {
		return node // Nothing to rotate
	}

	// Identify the pivot node (new root)
	pivot := node.left

	node.left = pivot.right
	pivot.right = node

	// Heights must be fixed bottom-up: node is now below pivot
	node.updateHeight()
	pivot.updateHeight()

	return pivot
}

// rotateLeft promotes node.right to the subtree root and returns it.
func rotateLeft[T any](node *Node[T]) *Node[T] {
	if node == nil || node.right == nil {
		return node // Nothing to rotate
	}

	pivot := node.right

	node.right = pivot.left
	pivot.left = node

	node.updateHeight()
	pivot.updateHeight()

	return pivot
}

// rotateLeftRight resolves a left-right zigzag.
func rotateLeftRight[T any](node *Node[T]) *Node[T] {
	node.left = rotateLeft(node.left)
	return rotateRight(node)
}

// rotateRightLeft resolves a right-left zigzag.
func rotateRightLeft[T any](node *Node[T]) *Node[T] {
	node.right = rotateRight(node.right)
	return rotateLeft(node)
}
