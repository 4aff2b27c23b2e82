package gif

func RowOrder(height int, interlaced bool) []int {
	var w workspace
	return append([]int(nil), w.rowOrder(height, interlaced)...)
}
