package rive

// Mat2DInvert returns the inverse of m. ok is false exactly when the
// determinant of the linear part is zero.
func Mat2DInvert(m Mat2D) (inv Mat2D, ok bool) {
	det := m.XX*m.YY - m.XY*m.YX
	if det == 0 {
		return Mat2D{}, false
	}
	return Mat2D{
		XX: m.YY / det,
		XY: -m.XY / det,
		YX: -m.YX / det,
		YY: m.XX / det,
		TX: (m.YX*m.TY - m.YY*m.TX) / det,
		TY: (m.XY*m.TX - m.XX*m.TY) / det,
	}, true
}

// Mat2DMultiply returns a*b: b is applied first, then a.
func Mat2DMultiply(a, b Mat2D) Mat2D {
	return Mat2D{
		XX: a.XX*b.XX + a.YX*b.XY,
		XY: a.XY*b.XX + a.YY*b.XY,
		YX: a.XX*b.YX + a.YX*b.YY,
		YY: a.XY*b.YX + a.YY*b.YY,
		TX: a.XX*b.TX + a.YX*b.TY + a.TX,
		TY: a.XY*b.TX + a.YY*b.TY + a.TY,
	}
}

// MapPoint applies m to p locally.
func MapPoint(m Mat2D, p Vec2) Vec2 {
	return Vec2{
		X: m.XX*p.X + m.YX*p.Y + m.TX,
		Y: m.XY*p.X + m.YY*p.Y + m.TY,
	}
}
