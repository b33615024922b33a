package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/paintly"
	"github.com/gogpu/paintly/media"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	var (
		configPath string
		outDir     string
		format     string
	)
	cmd := &cobra.Command{
		Use:   "render <script.toml>",
		Short: "Replay a drawing script and export the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := paintly.DefaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = paintly.LoadConfig(configPath); err != nil {
					return err
				}
			}
			if format != "" {
				cfg.Export.Format = format
			}
			s, err := loadScript(args[0])
			if err != nil {
				return err
			}
			path, err := render(s, cfg, outDir)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "engine configuration file")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")
	cmd.Flags().StringVarP(&format, "format", "f", "", "export format (png, jpeg, bmp, tiff)")
	return cmd
}

// render replays s on a fresh engine and writes the export into dir.
func render(s *script, cfg paintly.Config, dir string) (string, error) {
	eng, err := paintly.New(
		paintly.WithConfig(cfg),
		paintly.WithDeviceScale(s.Scale),
		paintly.WithLayout(func() (float64, float64) { return s.Width, s.Height }),
	)
	if err != nil {
		return "", err
	}
	if err := eng.Initialize(); err != nil {
		return "", err
	}
	defer func() { _ = eng.Teardown() }()

	for i, st := range s.Steps {
		if err := play(eng, st); err != nil {
			return "", fmt.Errorf("step %d (%s): %w", i+1, st.Action, err)
		}
	}
	return eng.ExportFile(dir)
}

func play(eng *paintly.Engine, st step) error {
	switch st.Action {
	case "draw":
		t, err := st.tool(eng.Tool())
		if err != nil {
			return err
		}
		if err := eng.SetTool(t); err != nil {
			return err
		}
		first, last := st.Points[0], st.Points[len(st.Points)-1]
		eng.HandlePointer(pointer(gpucontext.PointerDown, first))
		for _, p := range st.Points[1:] {
			eng.HandlePointer(pointer(gpucontext.PointerMove, p))
		}
		eng.HandlePointer(pointer(gpucontext.PointerUp, last))
		eng.HandlePointer(pointer(gpucontext.PointerLeave, last))
	case "media":
		data, err := os.ReadFile(st.File)
		if err != nil {
			return err
		}
		kind, _, err := media.Detect(data)
		if err != nil {
			return err
		}
		if st.Kind != "" {
			if kind, err = media.ParseKind(st.Kind); err != nil {
				return err
			}
		}
		return <-eng.SupplyMedia(data, kind)
	case "tick":
		eng.Tick(time.Duration(st.Millis) * time.Millisecond)
	case "clear":
		return eng.Clear()
	}
	return nil
}

func pointer(typ gpucontext.PointerEventType, p [2]float64) gpucontext.PointerEvent {
	return gpucontext.PointerEvent{
		Type:        typ,
		X:           p[0],
		Y:           p[1],
		PointerType: gpucontext.PointerTypeMouse,
		IsPrimary:   true,
		Pressure:    0.5,
	}
}
