package lsp

// utf16Column converts a byte offset within a line to the UTF-16 code unit
// offset clients count in.
func utf16Column(line string, offset int) int {
	col := 0
	for i, r := range line {
		if i >= offset {
			break
		}
		if r >= 0x10000 {
			col += 2
		} else {
			col++
		}
	}
	if offset > len(line) {
		col += offset - len(line)
	}
	return col
}

// byteColumn converts a UTF-16 column back to a byte offset within a line.
func byteColumn(line string, column int) int {
	col := 0
	for i, r := range line {
		if col >= column {
			return i
		}
		if r >= 0x10000 {
			col += 2
		} else {
			col++
		}
	}
	return len(line)
}

