package gif

// interlaceScan is one pass of the interlaced row order.
type interlaceScan struct {
	start, step int
}

var interlacing = [...]interlaceScan{
	{0, 8}, // every 8th row, starting with row 0
	{4, 8}, // every 8th row, starting with row 4
	{2, 4}, // every 4th row, starting with row 2
	{1, 2}, // every 2nd row, starting with row 1
}

// rowOrder maps each decompressed row to the frame row it paints.
func (w *workspace) rowOrder(height int, interlaced bool) []int {
	if cap(w.rows) < height {
		w.rows = make([]int, height)
	}
	rows := w.rows[:height]

	if !interlaced {
		for i := range rows {
			rows[i] = i
		}
		return rows
	}

	i := 0
	for _, pass := range interlacing {
		for y := pass.start; y < height; y += pass.step {
			rows[i] = y
			i++
		}
	}
	return rows
}
