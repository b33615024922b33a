package blend

// Mode selects a compositing operator.
type Mode uint8

const (
	// SourceOver composites source over destination.
	// Formula: S + D * (1 - Sa)
	SourceOver Mode = iota

	// EraseClamp limits destination alpha to 1 - Sa, rescaling the color
	// channels alike. Fully covered pixels become transparent, and applying
	// the same coverage twice changes nothing.
	EraseClamp
)

// String returns the operator name.
func (m Mode) String() string {
	switch m {
	case SourceOver:
		return "SourceOver"
	case EraseClamp:
		return "EraseClamp"
	default:
		return "Unknown"
	}
}

// Func composites one premultiplied source pixel onto one destination pixel.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// FuncFor returns the per-pixel function for m. Unknown modes fall back to
// SourceOver.
func FuncFor(m Mode) Func {
	switch m {
	case EraseClamp:
		return eraseClamp
	default:
		return sourceOver
	}
}

func sourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addClamp(sr, mulDiv255(dr, invSa)),
		addClamp(sg, mulDiv255(dg, invSa)),
		addClamp(sb, mulDiv255(db, invSa)),
		addClamp(sa, mulDiv255(da, invSa))
}

func eraseClamp(_, _, _, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	limit := 255 - sa
	if da <= limit {
		return dr, dg, db, da
	}
	if limit == 0 {
		return 0, 0, 0, 0
	}
	return scaleTo(dr, da, limit), scaleTo(dg, da, limit), scaleTo(db, da, limit), limit
}
