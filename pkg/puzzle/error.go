package puzzle

// BoardError enumerates everything wrong with a wall layout. It is data, not
// a Go error: an instance with empty fields means the puzzle is solved.
type BoardError struct {
	// CenterlessCells are cells that are not part of any center's region.
	CenterlessCells []Position
	// DanglingBorders are walls that do not connect to another wall at one
	// of their endpoints.
	DanglingBorders []Border
	// CutCenters are centers with a wall passing through them.
	CutCenters []Position
	// AsymmetricCenters are centers whose region is not rotationally
	// symmetric about them, is disconnected, or does not contain them.
	AsymmetricCenters []Position
	// WrongSizeCenters are centers with a size hint that their region does
	// not match.
	WrongSizeCenters []Position
}

// IsErrorFree reports whether the layout is a valid solved partition.
func (e *BoardError) IsErrorFree() bool {
	return e != nil &&
		len(e.CenterlessCells) == 0 &&
		len(e.DanglingBorders) == 0 &&
		len(e.CutCenters) == 0 &&
		len(e.AsymmetricCenters) == 0 &&
		len(e.WrongSizeCenters) == 0
}

// HasCenterlessCell reports whether the cell is listed in CenterlessCells.
func (e *BoardError) HasCenterlessCell(p Position) bool {
	if e == nil {
		return false
	}
	for _, cell := range e.CenterlessCells {
		if cell == p {
			return true
		}
	}
	return false
}

// HasDanglingBorder reports whether the border is listed in DanglingBorders.
func (e *BoardError) HasDanglingBorder(b Border) bool {
	if e == nil {
		return false
	}
	for _, border := range e.DanglingBorders {
		if border == b {
			return true
		}
	}
	return false
}

// HasCutCenter reports whether the center is listed in CutCenters.
func (e *BoardError) HasCutCenter(p Position) bool {
	if e == nil {
		return false
	}
	for _, center := range e.CutCenters {
		if center == p {
			return true
		}
	}
	return false
}

// HasAsymmetricCenter reports whether the center is listed in AsymmetricCenters.
func (e *BoardError) HasAsymmetricCenter(p Position) bool {
	if e == nil {
		return false
	}
	for _, center := range e.AsymmetricCenters {
		if center == p {
			return true
		}
	}
	return false
}

// HasWrongSizeCenter reports whether the center is listed in WrongSizeCenters.
func (e *BoardError) HasWrongSizeCenter(p Position) bool {
	if e == nil {
		return false
	}
	for _, center := range e.WrongSizeCenters {
		if center == p {
			return true
		}
	}
	return false
}
