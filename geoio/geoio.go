// Package geoio re-expresses polybool's loop and polyline data in
// terms of github.com/paulmach/orb's types, for downstream consumers
// — renderers, other geometry tooling — that already speak that
// vocabulary. polybool itself never imports orb or this package; the
// dependency runs one way, out from the core.
package geoio

import (
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	polybool "github.com/1943055307/Polygon-Boolean-Operations"
)

// ToOrbPolygon converts p to an orb.Polygon. orb.Ring is conventionally
// closed, so each ring gets its first point repeated at the end — the
// inverse of the loader's open-loop convention.
func ToOrbPolygon(p polybool.InputPolygon) orb.Polygon {
	poly := make(orb.Polygon, 0, 1+len(p.Holes))
	poly = append(poly, closedRing(p.Outer))
	for _, h := range p.Holes {
		poly = append(poly, closedRing(h))
	}
	return poly
}

func closedRing(loop []polybool.Point) orb.Ring {
	ring := make(orb.Ring, 0, len(loop)+1)
	for _, pt := range loop {
		ring = append(ring, orb.Point{pt.X, pt.Y})
	}
	if len(loop) > 0 {
		ring = append(ring, orb.Point{loop[0].X, loop[0].Y})
	}
	return ring
}

// FromOrbPolygon is the reverse of ToOrbPolygon: the open-loop
// convention is restored by dropping each ring's closing point.
func FromOrbPolygon(p orb.Polygon) polybool.InputPolygon {
	if len(p) == 0 {
		return polybool.InputPolygon{}
	}
	out := polybool.InputPolygon{Outer: openLoop(p[0])}
	for _, ring := range p[1:] {
		out.Holes = append(out.Holes, openLoop(ring))
	}
	return out
}

func openLoop(ring orb.Ring) []polybool.Point {
	n := len(ring)
	if n == 0 {
		return nil
	}
	if ring[0] == ring[n-1] {
		n--
	}
	pts := make([]polybool.Point, n)
	for i := 0; i < n; i++ {
		pts[i] = polybool.Point{X: ring[i].X(), Y: ring[i].Y()}
	}
	return pts
}

// ToOrbMultiLineString wraps the core's raw polyline output as an
// orb.MultiLineString, one two-point LineString per kept atomic
// segment. This is a direct, lossless re-expression, not a re-stitch:
// the core's non-goal of loop inference still holds here.
func ToOrbMultiLineString(segments []polybool.Polyline) orb.MultiLineString {
	mls := make(orb.MultiLineString, len(segments))
	for i, seg := range segments {
		mls[i] = orb.LineString{
			orb.Point{seg[0].X, seg[0].Y},
			orb.Point{seg[1].X, seg[1].Y},
		}
	}
	return mls
}

// WriteGeoJSON serializes mls as a GeoJSON FeatureCollection holding
// one Feature with a MultiLineString geometry.
func WriteGeoJSON(w io.Writer, mls orb.MultiLineString) error {
	fc := geojson.NewFeatureCollection()
	fc.Append(geojson.NewFeature(mls))
	data, err := fc.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
