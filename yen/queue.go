// SPDX-License-Identifier: MIT
//
// File: queue.go
// Role: Min-heap of deviation candidates shared across rounds.
// Determinism:
//   - Ordered by (weight, seq); seq is assigned at push time in discovery order.

package yen

import "container/heap"

// candidate is a full source→target path waiting for acceptance.
type candidate struct {
	weight float64
	path   []string
	spur   int    // index where path left its parent
	seq    uint64 // discovery order
}

// candidateQueue is a min-heap of *candidate ordered by (weight, seq).
type candidateQueue []*candidate

func (q candidateQueue) Len() int { return len(q) }

func (q candidateQueue) Less(i, j int) bool {
	if q[i].weight != q[j].weight {
		return q[i].weight < q[j].weight
	}

	return q[i].seq < q[j].seq
}

func (q candidateQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *candidateQueue) Push(x interface{}) { *q = append(*q, x.(*candidate)) }

func (q *candidateQueue) Pop() interface{} {
	old := *q
	n := len(old)
	c := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]

	return c
}

// push inserts c; callers set c.seq beforehand.
func (q *candidateQueue) push(c *candidate) { heap.Push(q, c) }

// pop removes the cheapest candidate, or returns nil when empty.
func (q *candidateQueue) pop() *candidate {
	if q.Len() == 0 {
		return nil
	}

	return heap.Pop(q).(*candidate)
}
