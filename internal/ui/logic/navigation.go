package logic

// EnsureVisible returns the viewport offset that keeps row on screen.
// height is the number of rows that fit, total the number of rows.
func EnsureVisible(row, offset, height, total int) int {
	if height < 1 {
		height = 1
	}

	// If selected row is above viewport, scroll up
	if row < offset {
		offset = row
	}
	// If selected row is below viewport, scroll down
	if row >= offset+height {
		offset = row - height + 1
	}

	// Never leave blank rows at the bottom
	maxOffset := total - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// RowOf returns the grid row holding index when perRow cards fit per row
func RowOf(index, perRow int) int {
	if perRow < 1 || index < 0 {
		return 0
	}
	return index / perRow
}

// RowCount returns how many grid rows n cards need
func RowCount(n, perRow int) int {
	if perRow < 1 || n <= 0 {
		return 0
	}
	return (n + perRow - 1) / perRow
}
