package analytics

import (
	"sort"

	"github.com/offertrack/track-ui-api/internal/domain/model"
)

// FlowNode is one node of the stage transition graph.
type FlowNode struct {
	Name  model.StageName `json:"name"`
	Count int             `json:"count"`
}

// FlowEdge is a weighted directed transition between two nodes, referencing
// positions in the node list.
type FlowEdge struct {
	Source int `json:"source"`
	Target int `json:"target"`
	Weight int `json:"value"`
}

// FlowGraph is the node/edge shape consumed by Sankey-style flow charts.
type FlowGraph struct {
	Nodes []FlowNode `json:"nodes"`
	Edges []FlowEdge `json:"links"`
}

// Flow builds the directed transition graph across all processes. Stages of
// each process are sorted ascending by stage_date (not order); every
// consecutive pair adds one to that transition's weight, so repeated
// transitions across processes all accumulate. Node counts are total
// occurrences of the name. Nodes follow the canonical pipeline ordering
// first, then unrecognized names in first-seen order. Processes with fewer
// than two dated stages contribute no edges.
func Flow(details []model.ProcessDetail) FlowGraph {
	nodeCounts := make(map[model.StageName]int)
	var firstSeen []model.StageName
	type pair struct{ src, dst model.StageName }
	edgeWeights := make(map[pair]int)

	for _, d := range details {
		stages := datedStages(d.Stages)
		sorted := model.StagesByDate(stages)
		for _, s := range sorted {
			if nodeCounts[s.Name] == 0 {
				firstSeen = append(firstSeen, s.Name)
			}
			nodeCounts[s.Name]++
		}
		for i := 0; i+1 < len(sorted); i++ {
			edgeWeights[pair{src: sorted[i].Name, dst: sorted[i+1].Name}]++
		}
	}
	if len(nodeCounts) == 0 {
		return FlowGraph{}
	}

	var names []model.StageName
	for _, canonical := range model.CanonicalStageOrder() {
		if nodeCounts[canonical] > 0 {
			names = append(names, canonical)
		}
	}
	for _, seen := range firstSeen {
		if !seen.Known() {
			names = append(names, seen)
		}
	}

	index := make(map[model.StageName]int, len(names))
	nodes := make([]FlowNode, len(names))
	for i, name := range names {
		index[name] = i
		nodes[i] = FlowNode{Name: name, Count: nodeCounts[name]}
	}

	edges := make([]FlowEdge, 0, len(edgeWeights))
	for p, w := range edgeWeights {
		edges = append(edges, FlowEdge{Source: index[p.src], Target: index[p.dst], Weight: w})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Source != edges[j].Source {
			return edges[i].Source < edges[j].Source
		}
		return edges[i].Target < edges[j].Target
	})

	return FlowGraph{Nodes: nodes, Edges: edges}
}

// datedStages filters out stages with a zero date; they cannot be placed in
// a chronological sequence.
func datedStages(stages []model.Stage) []model.Stage {
	out := stages[:0:0]
	for _, s := range stages {
		if !s.Date.IsZero() {
			out = append(out, s)
		}
	}
	return out
}
