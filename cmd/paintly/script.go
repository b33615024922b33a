package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/paintly"
	"github.com/pelletier/go-toml/v2"
)

// script is a recorded drawing session.
//
//	width = 400
//	height = 300
//	scale = 2
//
//	[[step]]
//	action = "media"
//	file = "photo.png"
//
//	[[step]]
//	action = "draw"
//	tool = "brush"
//	color = "#ff0000"
//	size = 8
//	points = [[10, 10], [60, 40], [120, 15]]
type script struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Scale  float64 `toml:"scale"`
	Steps  []step  `toml:"step"`
}

// step is one action. Draw steps replay a press, moves and a release, so
// they paint strokes or drag media depending on where they start.
type step struct {
	Action string       `toml:"action"`
	Tool   string       `toml:"tool"`
	Color  string       `toml:"color"`
	Size   float64      `toml:"size"`
	Points [][2]float64 `toml:"points"`
	File   string       `toml:"file"`
	Kind   string       `toml:"kind"`
	Millis int          `toml:"ms"`
}

var errBadScript = errors.New("paintly: bad script")

func loadScript(path string) (*script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s := &script{Scale: 1}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("%w: %w", errBadScript, err)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("%w: size %vx%v", errBadScript, s.Width, s.Height)
	}
	dir := filepath.Dir(path)
	for i := range s.Steps {
		st := &s.Steps[i]
		switch st.Action {
		case "draw":
			if len(st.Points) == 0 {
				return nil, fmt.Errorf("%w: step %d: draw without points", errBadScript, i+1)
			}
		case "media":
			if st.File == "" {
				return nil, fmt.Errorf("%w: step %d: media without file", errBadScript, i+1)
			}
			if !filepath.IsAbs(st.File) {
				st.File = filepath.Join(dir, st.File)
			}
		case "tick":
			if st.Millis <= 0 {
				return nil, fmt.Errorf("%w: step %d: tick needs ms > 0", errBadScript, i+1)
			}
		case "clear":
		default:
			return nil, fmt.Errorf("%w: step %d: unknown action %q", errBadScript, i+1, st.Action)
		}
	}
	return s, nil
}

// tool returns the tool a draw step selects. Unset fields keep the
// current tool's values.
func (st step) tool(cur paintly.Tool) (paintly.Tool, error) {
	t := cur
	if st.Tool != "" {
		k, err := paintly.ParseToolKind(st.Tool)
		if err != nil {
			return t, err
		}
		t.Kind = k
	}
	if st.Color != "" {
		t.Color = st.Color
	}
	if st.Size != 0 {
		t.Size = paintly.ClampSize(st.Size)
	}
	return t, nil
}
