// Package rewardroute answers one question for small unit-cost graphs: how
// much reward can one agent, or two independent agents, collect before time
// runs out?
//
// Every node may carry a reward weight. An agent starts with a time budget,
// pays one unit per edge travelled plus one unit to activate a node, and
// earns weight × time-left for each node it activates.
//
// The work is split across four packages, leaf to root:
//
//	core/      — immutable Graph: dense ids, reward weights, adjacency, Builder
//	dijkstra/  — distance oracle: exact shortest paths between reward nodes only
//	bnb/       — exact branch-and-bound over visiting orders for one agent
//	partition/ — every split of the reward set between two agents, in parallel
//
// solver/ wires them together and cmd/rewardroute exposes the pipeline on
// the command line:
//
//	rewardroute scenario classic-single   # score: 1651
//	rewardroute scenario classic-pair     # score: 1707
//	rewardroute solve -f run.yaml --agents 2 --budget 26
//
// Search is exact; it is sized for graphs of a few dozen nodes with at most
// about sixteen reward nodes.
package rewardroute
