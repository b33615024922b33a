package media

import (
	"fmt"
	"strings"
)

// Kind distinguishes still images from animated media.
type Kind uint8

const (
	// KindImage is a still raster image.
	KindImage Kind = iota

	// KindVideo is a sequence of timed frames.
	KindVideo
)

// String returns "image" or "video".
func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindVideo:
		return "video"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// ParseKind parses "image" or "video", case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "image":
		return KindImage, nil
	case "video":
		return KindVideo, nil
	default:
		return 0, fmt.Errorf("media: unknown kind %q", s)
	}
}
