package schema

import (
	"fmt"
	"strings"
)

// CycleWarning reports a group of schemas that reference each other.
//
// Cycles are legal: the generator emits one writer per schema however often
// it is referenced. They are reported because a cyclic writer family can
// nest without bound at run time.
type CycleWarning struct {
	Path    []string `json:"path"`    // ["A", "B", "A"]
	Message string   `json:"message"`
	Level   string   `json:"level"`
}

// AnalyzeCycles finds the strongly connected components of the schema
// reference graph (properties, additional properties and bases) using
// Tarjan's algorithm. Each component with more than one schema, or a single
// schema referring to itself, becomes a warning. An acyclic set returns an
// empty slice.
func AnalyzeCycles(set *Set) []CycleWarning {
	graph := buildReferenceGraph(set)

	warnings := []CycleWarning{}
	for _, scc := range tarjanSCC(set.Schemas(), graph) {
		if len(scc) > 1 || hasSelfLoop(scc[0], graph) {
			warnings = append(warnings, sccToWarning(scc, graph))
		}
	}
	return warnings
}

type referenceGraph map[*Schema][]*Schema

func buildReferenceGraph(set *Set) referenceGraph {
	graph := make(referenceGraph, len(set.Schemas()))
	for _, s := range set.Schemas() {
		edges := []*Schema{}
		seen := make(map[*Schema]bool)
		add := func(t *Schema) {
			if t.FromType || seen[t] {
				return
			}
			seen[t] = true
			edges = append(edges, t)
		}
		for _, base := range s.Extends {
			add(base)
		}
		for _, p := range s.Properties {
			add(p.ValueType)
		}
		if s.AdditionalProperties != nil {
			add(s.AdditionalProperties.ValueType)
		}
		graph[s] = edges
	}
	return graph
}

func hasSelfLoop(node *Schema, graph referenceGraph) bool {
	for _, n := range graph[node] {
		if n == node {
			return true
		}
	}
	return false
}

func tarjanSCC(nodes []*Schema, graph referenceGraph) [][]*Schema {
	var (
		index   = 0
		stack   []*Schema
		indices = make(map[*Schema]int)
		lowlink = make(map[*Schema]int)
		onStack = make(map[*Schema]bool)
		sccs    [][]*Schema
	)

	var strongConnect func(*Schema)
	strongConnect = func(v *Schema) {
		indices[v] = index
		lowlink[v] = index
		index++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range graph[v] {
			if _, visited := indices[w]; !visited {
				strongConnect(w)
				lowlink[v] = min(lowlink[v], lowlink[w])
			} else if onStack[w] {
				lowlink[v] = min(lowlink[v], indices[w])
			}
		}

		if lowlink[v] == indices[v] {
			var scc []*Schema
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				scc = append(scc, w)
				if w == v {
					break
				}
			}
			sccs = append(sccs, scc)
		}
	}

	for _, n := range nodes {
		if _, visited := indices[n]; !visited {
			strongConnect(n)
		}
	}
	return sccs
}

func sccToWarning(scc []*Schema, graph referenceGraph) CycleWarning {
	if len(scc) == 1 {
		name := scc[0].Name
		return CycleWarning{
			Path:    []string{name, name},
			Message: fmt.Sprintf("schema refers to itself: %s → %s", name, name),
			Level:   "warning",
		}
	}

	path := cyclePath(scc, graph)
	return CycleWarning{
		Path:    path,
		Message: fmt.Sprintf("reference cycle: %s", strings.Join(path, " → ")),
		Level:   "warning",
	}
}

// cyclePath walks edges inside the component from its last-popped member
// until it returns to the start.
func cyclePath(scc []*Schema, graph referenceGraph) []string {
	members := make(map[*Schema]bool, len(scc))
	for _, s := range scc {
		members[s] = true
	}

	start := scc[len(scc)-1]
	current := start
	path := []string{start.Name}
	visited := make(map[*Schema]bool)

	for {
		visited[current] = true
		var next *Schema
		for _, n := range graph[current] {
			if members[n] && (!visited[n] || n == start) {
				next = n
				break
			}
		}
		if next == nil {
			break
		}
		path = append(path, next.Name)
		if next == start {
			break
		}
		current = next
	}
	return path
}
