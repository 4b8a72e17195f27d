// Package fptree mines association rules from a transaction database using
// the FP-Growth algorithm (Han, Pei, Yin 2000).
//
// A caller supplies a global item-frequency ranking (most frequent item
// first) once, builds a Tree from it, and inserts transactions one at a
// time. The tree compresses the transactions into a prefix tree, sharing
// structure between transactions that begin with the same frequent items.
// Calling Rules walks that tree to extract maximal-length frequent patterns
// and converts them into association rules with support, confidence, and
// lift.
//
//	tree, err := fptree.New([]string{"a", "b", "c"})
//	tree.Insert([]string{"a", "b"})
//	tree.Insert([]string{"a", "c"})
//	tree.SetSupport(0.4)
//	rules, err := tree.Rules()
//
// Items are identified only by Go equality (the type parameter is
// constrained to comparable); no ordering or string conversion is imposed on
// the caller. Ingesting raw transactions from files or databases,
// pre-computing the frequency ranking, and persisting mined rules are all
// left to the caller — this package is a single in-process mining engine,
// not a pipeline.
//
// A Tree is not safe for concurrent use by multiple goroutines. Independent
// Tree values share no state and may be used concurrently.
package fptree
