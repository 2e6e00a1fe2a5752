package gridgraph

// NoComponent is the label of blocked and out-of-grid cells.
const NoComponent = -1

// ComponentMap partitions the traversable cells of a Grid into
// 4-connected components. It is immutable and safe for concurrent reads.
type ComponentMap struct {
	grid    *Grid
	labels  []int     // per cell; NoComponent for obstacles
	members [][]Point // per label, in row-major discovery order
}

// Components finds all contiguous regions of traversable cells under
// 4-connectivity. Labels are assigned in row-major order of each
// component's first cell, so the labelling is deterministic.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for labels and member lists.
func (g *Grid) Components() *ComponentMap {
	return g.label(g.Traversable)
}

// ComponentsIn labels components like Components but only over traversable
// cells inside region. Cells connected solely through the margin land in
// different components, and margin cells carry NoComponent. This matches the
// domain distance fields are searched over.
func (g *Grid) ComponentsIn(region Region) *ComponentMap {
	return g.label(func(p Point) bool {
		return region.Contains(p) && g.Traversable(p)
	})
}

// label runs a BFS flood fill over the cells accepted by keep.
func (g *Grid) label(keep func(Point) bool) *ComponentMap {
	total := g.Cells()
	labels := make([]int, total)
	for i := range labels {
		labels[i] = NoComponent
	}
	var members [][]Point

	for i0 := 0; i0 < total; i0++ {
		if labels[i0] != NoComponent || !keep(g.Point(i0)) {
			continue
		}
		label := len(members)
		queue := []int{i0}
		labels[i0] = label
		var comp []Point

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			p := g.Point(u)
			comp = append(comp, p)
			for _, d := range directionOffsets {
				q := p.Add(d)
				if !keep(q) {
					continue
				}
				vi := g.Index(q)
				if labels[vi] == NoComponent {
					labels[vi] = label
					queue = append(queue, vi)
				}
			}
		}
		members = append(members, comp)
	}

	return &ComponentMap{grid: g, labels: labels, members: members}
}

// Len returns the number of components.
func (cm *ComponentMap) Len() int {
	return len(cm.members)
}

// Label returns the component label of p, or NoComponent when p is blocked
// or outside the grid.
// Complexity: O(1).
func (cm *ComponentMap) Label(p Point) int {
	if !cm.grid.InBounds(p) {
		return NoComponent
	}
	return cm.labels[cm.grid.Index(p)]
}

// Same reports whether a and b are traversable cells of one component.
// Complexity: O(1).
func (cm *ComponentMap) Same(a, b Point) bool {
	la := cm.Label(a)
	return la != NoComponent && la == cm.Label(b)
}

// Members returns the cells of p's component, or nil when p has none.
// The slice is shared; callers must not modify it.
// Complexity: O(1).
func (cm *ComponentMap) Members(p Point) []Point {
	l := cm.Label(p)
	if l == NoComponent {
		return nil
	}
	return cm.members[l]
}

// Component returns the cells carrying label, or ErrComponentIndex.
func (cm *ComponentMap) Component(label int) ([]Point, error) {
	if label < 0 || label >= len(cm.members) {
		return nil, ErrComponentIndex
	}
	return cm.members[label], nil
}

// Grid returns the grid the map was built from.
func (cm *ComponentMap) Grid() *Grid {
	return cm.grid
}
