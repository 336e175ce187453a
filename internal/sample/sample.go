// SPDX-License-Identifier: MIT

// Package sample provides ready-made graphs: the classic ten-node worked
// example and seeded random connected graphs used by tests and benchmarks.
package sample

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/rewardroute/core"
)

// ClassicStart is the start node of the classic example.
const ClassicStart = "AA"

// Classic returns the ten-node worked example. Six nodes carry a reward.
//
//	AA(0) ─ BB(13) ─ CC(2) ─ DD(20) ─ EE(3) ─ FF ─ GG ─ HH(22)
//	 │  └──────────────────────┘
//	 II ─ JJ(21)
func Classic() *core.Graph {
	g, err := core.NewBuilder().
		AddNode("AA", 0, "DD", "II", "BB").
		AddNode("BB", 13, "CC", "AA").
		AddNode("CC", 2, "DD", "BB").
		AddNode("DD", 20, "CC", "AA", "EE").
		AddNode("EE", 3, "FF", "DD").
		AddNode("FF", 0, "EE", "GG").
		AddNode("GG", 0, "FF", "HH").
		AddNode("HH", 22, "GG").
		AddNode("II", 0, "AA", "JJ").
		AddNode("JJ", 21, "II").
		Build(core.WithSymmetricEdges())
	if err != nil {
		panic(fmt.Sprintf("sample: classic graph: %v", err))
	}

	return g
}

// Disconnected returns two components {0,1,2} and {3,4}; nodes 2 and 4 carry rewards.
func Disconnected() *core.Graph {
	g, err := core.NewGraph(
		[]int{0, 0, 5, 0, 7},
		[][]int{{1}, {0, 2}, {1}, {4}, {3}},
		core.WithSymmetricEdges(),
	)
	if err != nil {
		panic(fmt.Sprintf("sample: disconnected graph: %v", err))
	}

	return g
}

// Random returns a connected undirected graph on n nodes built from a random
// spanning tree plus extra random edges. Node 0 has zero weight; rewards
// other nodes get weights in [1, maxWeight]. Deterministic for a given rng state.
func Random(rng *rand.Rand, n, extra, rewards, maxWeight int) *core.Graph {
	if n < 1 || rewards >= n || maxWeight < 1 {
		panic(fmt.Sprintf("sample: bad random shape n=%d rewards=%d maxWeight=%d", n, rewards, maxWeight))
	}
	adj := make([][]int, n)
	link := func(a, b int) {
		if a == b {
			return
		}
		for _, v := range adj[a] {
			if v == b {
				return
			}
		}
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
	}
	for v := 1; v < n; v++ {
		link(v, rng.Intn(v))
	}
	for k := 0; k < extra; k++ {
		link(rng.Intn(n), rng.Intn(n))
	}

	weights := make([]int, n)
	for _, v := range rng.Perm(n - 1)[:rewards] {
		weights[v+1] = 1 + rng.Intn(maxWeight)
	}

	g, err := core.NewGraph(weights, adj, core.WithSymmetricEdges())
	if err != nil {
		panic(fmt.Sprintf("sample: random graph: %v", err))
	}

	return g
}
