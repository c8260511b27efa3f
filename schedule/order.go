package schedule

import "github.com/polykit/affine/internal/algoutils"

// OrderAccesses linearizes a dependence graph of MemoryAccess nodes into an
// index permutation consistent with every node's InEdges: for each i in the
// result, every access i depends on (via InEdges) already has a smaller
// position. Built on algoutils.TopologicalSort, which this package feeds by
// translating each access's InEdges pointers into the index-list form that
// function expects.
func OrderAccesses(accesses []*MemoryAccess) []int {
	index := make(map[*MemoryAccess]int, len(accesses))
	for i, a := range accesses {
		index[a] = i
	}
	inputs := make([][]int, len(accesses))
	for i, a := range accesses {
		deps := make([]int, 0, len(a.InEdges))
		for _, in := range a.InEdges {
			if j, ok := index[in]; ok {
				deps = append(deps, j)
			}
		}
		inputs[i] = deps
	}
	sorted, _ := algoutils.TopologicalSort(inputs)
	return sorted
}
