// Command shapesdemo draws the shapes example scene and writes it as PNG.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/gogpu/shapes"
)

func main() {
	var (
		width      = pflag.Int("width", 600, "canvas width")
		height     = pflag.Int("height", 600, "canvas height")
		background = pflag.String("background", "black", "canvas background color")
		vertices   = pflag.Int("vertices", 1000, "vertices per circle")
		output     = pflag.StringP("output", "o", "shapes.png", "output file")
		verbose    = pflag.BoolP("verbose", "v", false, "log item lifecycle")
	)
	pflag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	shapes.SetLogger(logger)

	if err := run(*width, *height, *background, *vertices, *output); err != nil {
		logger.Error("shapesdemo failed", "error", err)
		os.Exit(1)
	}
	logger.Info("scene saved", "path", *output, "width", *width, "height", *height)
}

func run(width, height int, background string, n int, output string) error {
	gui := shapes.NewGUI(shapes.WithWindowSize(width+200, height), shapes.WithTitle("shapesdemo"))
	defer gui.Destroy()

	canvas, err := gui.NewCanvas(shapes.WithDimensions(width, height), shapes.WithBackground(background))
	if err != nil {
		return err
	}

	a, err := shapes.NewCircle(canvas, shapes.Pt(100, 100), 50, n)
	if err != nil {
		return fmt.Errorf("circle a: %w", err)
	}
	b, err := shapes.NewCircle(canvas, shapes.Pt(200, 300), 1, n, shapes.Fill("green"))
	if err != nil {
		return fmt.Errorf("circle b: %w", err)
	}
	if err := a.SetStyle("outline", "blue"); err != nil {
		return err
	}
	if err := a.SetStyle("fill", "blue"); err != nil {
		return err
	}
	if err := b.SetStyle("outline", "green"); err != nil {
		return err
	}
	if err := b.SetRadius(50); err != nil {
		return err
	}

	r := 50.0
	square, err := shapes.NewPolygon(canvas,
		[]shapes.Vertex{{X: -r, Y: -r}, {X: r, Y: -r}, {X: r, Y: r}, {X: -r, Y: r}},
		shapes.Fill(""), shapes.Outline("yellow"), shapes.LineWidth(2))
	if err != nil {
		return fmt.Errorf("square: %w", err)
	}
	pos, err := b.Position()
	if err != nil {
		return err
	}
	if err := square.SetPosition(pos); err != nil {
		return err
	}

	if err := gui.Update(); err != nil {
		return err
	}
	return canvas.SavePNG(output)
}
