/*
Package domain contains the taxonomy model and the pure tree operations over it.

A framework is a single tree rooted at the "T0000" node. Tactics, techniques
and procedures are told apart only by id prefix (T, TQ, P); the tree itself
accepts any node under any parent. Nothing in this package performs I/O.

# Operations

  - Find: pre-order lookup by id, root included.
  - Remove: unlinks the first descendant with a given id, with its subtree.
  - Render: lazy line-by-line listing of the hierarchy.
  - Walk, Size, Clone, Equal: traversal helpers used by adapters and tools.
*/
package domain
