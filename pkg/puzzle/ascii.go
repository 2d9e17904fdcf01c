package puzzle

import "strings"

// Box-drawing rendering of a board, with one character column per node and
// wall stretch. Used for readable test fixtures and debug logging.
//
//	┌─┬───┬─┐
//	│ ├─┐ └─┤
//	│ │ ├───┤
//	│ │ │   │
//	└─┴─┴───┘

var nodeRunes = map[[4]bool]string{
	{false, false, false, false}: "  ",
	{false, false, false, true}:  "╴ ",
	{false, false, true, false}:  "╷ ",
	{false, false, true, true}:   "┐ ",
	{false, true, false, false}:  "╶─",
	{false, true, false, true}:   "──",
	{false, true, true, false}:   "┌─",
	{false, true, true, true}:    "┬─",
	{true, false, false, false}:  "╵ ",
	{true, false, false, true}:   "┘ ",
	{true, false, true, false}:   "│ ",
	{true, false, true, true}:    "┤ ",
	{true, true, false, false}:   "└─",
	{true, true, false, true}:    "┴─",
	{true, true, true, false}:    "├─",
	{true, true, true, true}:     "┼─",
}

var runeBars = map[rune][4]bool{
	'┼': {true, true, true, true},
	'├': {true, true, true, false},
	'┴': {true, true, false, true},
	'└': {true, true, false, false},
	'┤': {true, false, true, true},
	'│': {true, false, true, false},
	'┘': {true, false, false, true},
	'╵': {true, false, false, false},
	'┬': {false, true, true, true},
	'┌': {false, true, true, false},
	'─': {false, true, false, true},
	'╶': {false, true, false, false},
	'┐': {false, false, true, true},
	'╷': {false, false, true, false},
	'╴': {false, false, false, true},
}

// String renders the board's walls as box-drawing art.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row <= b.height; row++ {
		var line strings.Builder
		for col := 0; col <= b.width; col++ {
			bottomRight := P(row, col)
			topLeft := bottomRight.Left().Up()
			bars := [4]bool{
				b.IsActive(BorderRight(topLeft)),
				b.IsActive(BorderUp(bottomRight)),
				b.IsActive(BorderLeft(bottomRight)),
				b.IsActive(BorderDown(topLeft)),
			}
			line.WriteString(nodeRunes[bars])
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		if row != b.height {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// ParseBoard builds a board from box-drawing art as produced by String.
func ParseBoard(s string) *Board {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	width := 0
	if len(lines) > 0 {
		runes := []rune(lines[0])
		if len(runes) > 0 {
			width = (len(runes) - 1) / 2
		}
	}
	height := len(lines) - 1
	if height < 0 {
		height = 0
	}
	board := &Board{width: width, height: height, borders: make(borderSet)}
	for row, line := range lines {
		runes := []rune(line)
		column := 0
		for i := 0; i < len(runes); i += 2 {
			bars := runeBars[runes[i]]
			bottomRight := P(row, column)
			if bars[1] {
				board.borders.add(BorderUp(bottomRight))
			}
			if bars[2] {
				board.borders.add(BorderLeft(bottomRight))
			}
			column++
		}
	}
	return board
}
