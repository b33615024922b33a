// Command paintly renders drawing scripts headlessly and inspects colors
// and media files.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/paintly"
	"github.com/gogpu/paintly/media"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:          "paintly",
		Short:        "Headless driver for the paintly drawing engine",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if verbose {
				paintly.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log engine activity to stderr")

	root.AddCommand(
		newRenderCmd(),
		newContrastCmd(),
		newDetectCmd(),
		newConfigCmd(),
	)
	return root
}

func newContrastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contrast <hex>",
		Short: "Print the text color to use on a swatch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := paintly.ContrastColor(args[0])
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", c, c.Hex())
			return err
		},
	}
}

func newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect <file>",
		Short: "Print the media kind and MIME type of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			kind, mime, err := media.Detect(data)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", kind, mime)
			return err
		},
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config [file]",
		Short: "Validate a configuration file, or print the defaults",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := paintly.DefaultConfig()
			if len(args) == 1 {
				var err error
				if cfg, err = paintly.LoadConfig(args[0]); err != nil {
					return err
				}
			}
			data, err := cfg.Encode()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
