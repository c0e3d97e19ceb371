package gridgraph

// Label finds all maximal connected regions of passable cells
// (CellValues[y][x] ≥ Threshold), according to gg.Conn connectivity, and tags
// every passable cell with its region ID.
//
// Seeds are taken in row-major order, so region IDs are deterministic. Each
// region is grown with BFS over an explicit queue; no recursion, so grid size
// is limited by memory only. A cell is enqueued at most once.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for labels, queue and output.
func (gg *GridGraph) Label() *Labeling {
	labels := make([][]int, gg.Height)
	for y := range labels {
		labels[y] = make([]int, gg.Width)
	}
	var regions []Region
	offsets := gg.NeighborOffsets()
	queue := make([]int, 0, gg.Width*gg.Height)

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Passable(x, y) || labels[y][x] != 0 {
				continue // wall or already labelled
			}
			id := len(regions) + 1
			region := Region{ID: id}

			// BFS to collect region
			queue = append(queue[:0], gg.index(x, y))
			labels[y][x] = id
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				region.Cells = append(region.Cells, u)
				ux, uy := gg.Coordinate(u)
				if gg.OnBorder(ux, uy) {
					region.TouchesBorder = true
				}
				for _, d := range offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.Passable(vx, vy) || labels[vy][vx] != 0 {
						continue
					}
					labels[vy][vx] = id
					queue = append(queue, gg.index(vx, vy))
				}
			}
			regions = append(regions, region)
		}
	}

	return &Labeling{Labels: labels, Regions: regions}
}

// ConnectedComponents returns the cells of each region found by Label, in
// region ID order. Each component is a slice of row-major cell indices.
//
// To convert an index back to (x,y), use Coordinate(idx).
func (gg *GridGraph) ConnectedComponents() [][]int {
	l := gg.Label()
	comps := make([][]int, len(l.Regions))
	for i, r := range l.Regions {
		comps[i] = r.Cells
	}
	return comps
}
