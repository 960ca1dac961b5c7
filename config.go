package stlview

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

const (
	DefaultInputPath     = "StallCentered.stl"
	DefaultWindowWidth   = 800
	DefaultWindowHeight  = 600
	DefaultTitle         = "Interactive STL Viewer"
	DefaultTitleFontSize = 18
	DefaultCameraPreset  = "iso"
)

// LightBlue is the default mesh fill colour.
var LightBlue = colornames.Lightblue

// Config holds everything the command used to hard-code.
type Config struct {
	InputPath       string
	WindowWidth     int
	WindowHeight    int
	MeshColor       color.RGBA
	BackgroundColor color.RGBA
	ShowEdges       bool
	EdgeColor       color.RGBA
	CameraPreset    string
	Title           string
	TitleFontSize   float64
	ShowStats       bool
	CullBackFaces   bool
}

func DefaultConfig() Config {
	return Config{
		InputPath:       DefaultInputPath,
		WindowWidth:     DefaultWindowWidth,
		WindowHeight:    DefaultWindowHeight,
		MeshColor:       LightBlue,
		BackgroundColor: color.RGBA{R: 76, G: 76, B: 76, A: 255},
		EdgeColor:       colornames.Black,
		CameraPreset:    DefaultCameraPreset,
		Title:           DefaultTitle,
		TitleFontSize:   DefaultTitleFontSize,
	}
}

func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.InputPath) == "" {
		errs = append(errs, errors.New("input path is empty"))
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.WindowWidth, c.WindowHeight))
	}
	if _, ok := cameraPresets[c.CameraPreset]; !ok {
		errs = append(errs, fmt.Errorf("unknown camera preset %q", c.CameraPreset))
	}
	if c.TitleFontSize < 0 {
		errs = append(errs, fmt.Errorf("title font size %v is negative", c.TitleFontSize))
	}
	return errors.Join(errs...)
}

// ViewOptions is the part of the configuration the viewer consumes.
type ViewOptions struct {
	Width           int
	Height          int
	MeshColor       color.RGBA
	BackgroundColor color.RGBA
	ShowEdges       bool
	EdgeColor       color.RGBA
	CameraPreset    string
	Title           string
	TitleFontSize   float64
	ShowStats       bool
	CullBackFaces   bool
}

func (c Config) ViewOptions() ViewOptions {
	return ViewOptions{
		Width:           c.WindowWidth,
		Height:          c.WindowHeight,
		MeshColor:       c.MeshColor,
		BackgroundColor: c.BackgroundColor,
		ShowEdges:       c.ShowEdges,
		EdgeColor:       c.EdgeColor,
		CameraPreset:    c.CameraPreset,
		Title:           c.Title,
		TitleFontSize:   c.TitleFontSize,
		ShowStats:       c.ShowStats,
		CullBackFaces:   c.CullBackFaces,
	}
}

// ParseColor accepts an SVG colour name or a #rrggbb hex value.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
