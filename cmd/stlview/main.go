package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/smasonuk/stlview"
	"github.com/spf13/cobra"
)

// newRootCmd builds the command around a fresh configuration. The viewer is
// only reached once the mesh has loaded.
func newRootCmd(viewer stlview.InteractiveViewer) *cobra.Command {
	cfg := stlview.DefaultConfig()
	var meshColor, edgeColor, background string

	cmd := &cobra.Command{
		Use:           "stlview [file]",
		Short:         "Interactive viewer for STL meshes",
		Long:          "Load an ASCII or binary STL file and show it in a window. Drag to rotate, right drag or shift drag to pan, scroll to zoom, R to reset the camera.",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.InputPath = args[0]
			}

			var err error
			if cfg.MeshColor, err = stlview.ParseColor(meshColor); err != nil {
				return err
			}
			if cfg.EdgeColor, err = stlview.ParseColor(edgeColor); err != nil {
				return err
			}
			if cfg.BackgroundColor, err = stlview.ParseColor(background); err != nil {
				return err
			}

			return stlview.Run(cfg, stlview.NewSTLDecoder(), viewer)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.WindowWidth, "width", cfg.WindowWidth, "window width in pixels")
	flags.IntVar(&cfg.WindowHeight, "height", cfg.WindowHeight, "window height in pixels")
	flags.StringVar(&meshColor, "color", "lightblue", "mesh colour, an SVG colour name or #rrggbb")
	flags.StringVar(&edgeColor, "edge-color", "black", "edge colour when --edges is set")
	flags.StringVar(&background, "background", "#4c4c4c", "background colour")
	flags.BoolVar(&cfg.ShowEdges, "edges", cfg.ShowEdges, "draw triangle edges")
	flags.StringVar(&cfg.CameraPreset, "camera", cfg.CameraPreset, "initial camera: "+strings.Join(stlview.CameraPresets(), ", "))
	flags.StringVar(&cfg.Title, "title", cfg.Title, "text shown on the upper edge of the window")
	flags.Float64Var(&cfg.TitleFontSize, "font-size", cfg.TitleFontSize, "title size in pixels")
	flags.BoolVar(&cfg.ShowStats, "stats", cfg.ShowStats, "show frame rate, triangle count and model size")
	flags.BoolVar(&cfg.CullBackFaces, "cull", cfg.CullBackFaces, "hide faces pointing away from the camera")
	return cmd
}

// run executes the command and returns the process exit status. A missing
// mesh file is reported on stdout, anything else is logged to stderr.
func run(args []string, viewer stlview.InteractiveViewer, stdout, stderr io.Writer) int {
	cmd := newRootCmd(viewer)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return 0
	}
	var notFound *stlview.FileNotFoundError
	if errors.As(err, &notFound) {
		fmt.Fprintf(stdout, "Error: %s\n", notFound.Error())
		return 1
	}
	log.New(stderr, "", log.LstdFlags).Print(err)
	return 1
}

func main() {
	os.Exit(run(os.Args[1:], stlview.NewEbitenViewer(), os.Stdout, os.Stderr))
}
