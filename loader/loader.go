// Package loader turns the line-oriented polygon text format into
// polybool.InputPolygon values. It is the only part of this repo that
// touches the filesystem for polygon data — polybool itself never does
// I/O, per the core's external-collaborator boundary.
//
// Format: lines starting with '#' are comments; a comment beginning
// with "#loop" (case-insensitive) terminates the current loop.
// Non-comment lines hold two numbers separated by commas or
// whitespace (x y). The first completed loop is the outer boundary;
// every loop after it is a hole.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	polybool "github.com/1943055307/Polygon-Boolean-Operations"
)

// Sentinel base errors, wrapped with line/file context via %w so
// callers can still errors.Is against the category.
var (
	ErrOpenFile    = errors.New("failed to open polygon file")
	ErrMalformed   = errors.New("malformed polygon line")
	ErrNoOuterLoop = errors.New("no outer loop found in file")
)

var fieldSeparator = regexp.MustCompile(`[,\s]+`)

// defaultEpsClose is the loop-closing tolerance Load falls back to
// when a caller has no config.Tolerances in hand. This is the
// external, file-format dedup tolerance, not the core's own (tighter)
// internal EpsClose default — text files commonly round their closing
// point to a few decimal places, so 1e-3 matches
// original_source/inputpolygon.cpp's almostSame default rather than
// the core's stricter value. LoadWithTolerance exposes the tolerance
// as a parameter so a caller that already has a config.Tolerances can
// pass whatever value it wants the loader and the core to agree on.
const defaultEpsClose = 1e-3

// Load reads the polygon file at path and returns the InputPolygon it
// describes. On any error the returned polygon is the zero value.
func Load(path string) (polybool.InputPolygon, error) {
	return LoadWithTolerance(path, defaultEpsClose)
}

// LoadWithTolerance is Load with an explicit loop-closing tolerance,
// for callers that already have a config.Tolerances in hand and want
// the loader to agree with it exactly.
func LoadWithTolerance(path string, epsClose float64) (polybool.InputPolygon, error) {
	f, err := os.Open(path)
	if err != nil {
		return polybool.InputPolygon{}, fmt.Errorf("%w: %s: %v", ErrOpenFile, path, err)
	}
	defer f.Close()

	poly, err := parse(f, epsClose)
	if err != nil {
		return polybool.InputPolygon{}, err
	}
	if poly.Empty() {
		return polybool.InputPolygon{}, fmt.Errorf("%w: %s", ErrNoOuterLoop, path)
	}

	logrus.WithFields(logrus.Fields{
		"file":        path,
		"outerPoints": len(poly.Outer),
		"holes":       len(poly.Holes),
	}).Debug("loader: parsed polygon file")
	for i, h := range poly.Holes {
		logrus.WithFields(logrus.Fields{
			"file": path, "hole": i, "points": len(h),
		}).Debug("loader: hole loop")
	}
	return poly, nil
}

func parse(r io.Reader, epsClose float64) (polybool.InputPolygon, error) {
	var poly polybool.InputPolygon
	var current []polybool.Point

	flush := func() {
		current = closeLoop(current, epsClose)
		if len(current) == 0 {
			return
		}
		if len(poly.Outer) == 0 {
			poly.Outer = current
		} else {
			poly.Holes = append(poly.Holes, current)
		}
		current = nil
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			if strings.HasPrefix(strings.ToLower(line), "#loop") {
				flush()
			}
			continue
		}
		parts := fieldSeparator.Split(line, -1)
		// A leading or trailing separator (e.g. "1,2,") makes Split
		// yield empty tokens; drop them before checking the field count.
		parts = nonEmpty(parts)
		if len(parts) < 2 {
			return polybool.InputPolygon{}, fmt.Errorf("%w: line %d: fewer than 2 fields", ErrMalformed, lineNo)
		}
		x, errX := strconv.ParseFloat(parts[0], 64)
		y, errY := strconv.ParseFloat(parts[1], 64)
		if errX != nil || errY != nil {
			return polybool.InputPolygon{}, fmt.Errorf("%w: line %d: non-numeric value", ErrMalformed, lineNo)
		}
		current = append(current, polybool.Point{X: x, Y: y})
	}
	if err := scanner.Err(); err != nil {
		return polybool.InputPolygon{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	flush()
	return poly, nil
}

func nonEmpty(ss []string) []string {
	out := ss[:0:0]
	for _, s := range ss {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// closeLoop drops a loop's trailing point when it lies within
// epsClose of the first point — the same rule polybool's topology
// builder applies, kept in lockstep here so the loader's notion of a
// "closed" loop matches the core's.
func closeLoop(loop []polybool.Point, epsClose float64) []polybool.Point {
	if len(loop) < 2 {
		return loop
	}
	first, last := loop[0], loop[len(loop)-1]
	dx, dy := first.X-last.X, first.Y-last.Y
	if dx*dx+dy*dy < epsClose*epsClose {
		return loop[:len(loop)-1]
	}
	return loop
}
