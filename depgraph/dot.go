package depgraph

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
)

// GenerateDOT renders the graph as deterministic Graphviz DOT source,
// suitable for diffing in golden tests (spec §4.2). Node identities
// are hashed to stable symbolic names (n<hash>) so the output does not
// depend on N's concrete representation; labelFn supplies the
// human-readable label attached to each node.
func (g *DepGraph[N]) GenerateDOT(labelFn func(N) string) string {
	nodes := g.Nodes()
	sort.Slice(nodes, func(i, j int) bool {
		return symbolicName(nodes[i]) < symbolicName(nodes[j])
	})

	var b strings.Builder
	b.WriteString("digraph DepGraph {\n")
	b.WriteString("  rankdir=BT;\n")

	for _, n := range nodes {
		fmt.Fprintf(&b, "  %s [label=%q];\n", symbolicName(n), labelFn(n))
	}

	type edgeLine struct{ from, to, line string }
	var lines []edgeLine
	for _, n := range nodes {
		deps, _ := g.DependsOn(n)
		for i, d := range deps {
			lines = append(lines, edgeLine{
				from: symbolicName(n),
				to:   symbolicName(d),
				line: fmt.Sprintf("  %s -> %s [label=%q];\n", symbolicName(n), symbolicName(d), fmt.Sprintf("%d", i)),
			})
		}
	}
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].from != lines[j].from {
			return lines[i].from < lines[j].from
		}
		return lines[i].to < lines[j].to
	})
	for _, e := range lines {
		b.WriteString(e.line)
	}

	b.WriteString("}\n")
	return b.String()
}

// symbolicName derives a short, stable node name from N's fmt
// representation. It does not need to be collision-proof across an
// entire program's lifetime — only stable and deterministic within one
// DOT render, which an FNV-1a hash of the %v representation gives us.
func symbolicName[N any](n N) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(fmt.Sprintf("%v", n)))
	return fmt.Sprintf("n%08x", h.Sum32())
}
