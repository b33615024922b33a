package blend

// mulDiv255 multiplies two byte values and divides by 255 with rounding.
// Formula: (a * b + 127) / 255
func mulDiv255(a, b byte) byte {
	return byte((uint16(a)*uint16(b) + 127) / 255)
}

// addClamp adds two byte values with clamping to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

// scaleTo rescales a premultiplied channel c of a pixel with alpha a so the
// pixel keeps its color at the new alpha na. Requires na <= a and a > 0.
func scaleTo(c, a, na byte) byte {
	return byte((uint32(c)*uint32(na) + uint32(a)/2) / uint32(a))
}
