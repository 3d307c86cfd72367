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

// Package avl implements a generic self-balancing binary search tree.
//
// A Tree stores distinct values under a total order and keeps every node's
// balance factor (height of the left subtree minus height of the right
// subtree) within -1..1, so Add, Remove and Find run in O(log n).
//
//	tree := avl.NewFromSlice([]int{4, 2, 5, 1, 3, 0})
//	tree.Add(7)
//	tree.Remove(4)
//	for v := range tree.All() {
//		fmt.Println(v)
//	}
//
// Adding a value equal to one already stored is a no-op. A Tree must not be
// used from several goroutines at once without external locking.
package avl
