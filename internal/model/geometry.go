package model

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Translate returns a copy of g moved by the given offsets.
func Translate(g orb.Geometry, dx, dy float64) orb.Geometry {
	return mapPoints(g, func(_ int, p orb.Point) orb.Point {
		return orb.Point{p[0] + dx, p[1] + dy}
	})
}

// Vertices returns the vertices of g in a stable order.
// The closing point of a ring is not reported separately.
func Vertices(g orb.Geometry) []orb.Point {
	result := []orb.Point{}
	mapPoints(g, func(i int, p orb.Point) orb.Point {
		if i == len(result) {
			result = append(result, p)
		}
		return p
	})
	return result
}

// SetVertex returns a copy of g with the vertex at the given index (as per
// Vertices) moved to p.
// Moving the first vertex of a ring also moves its closing point.
func SetVertex(g orb.Geometry, index int, p orb.Point) orb.Geometry {
	return mapPoints(g, func(i int, old orb.Point) orb.Point {
		if i == index {
			return p
		}
		return old
	})
}

// NearestVertex returns the index of the vertex of g closest to p and its
// distance, or -1 if g has no vertices.
func NearestVertex(g orb.Geometry, p orb.Point) (int, float64) {
	best, bestDist := -1, math.Inf(1)
	for i, v := range Vertices(g) {
		if d := planar.Distance(v, p); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, bestDist
}

// Hits returns whether p lies within the given tolerance of g, or inside it
// for areal geometries.
func Hits(g orb.Geometry, p orb.Point, tolerance float64) bool {
	switch g := g.(type) {
	case orb.Point:
		return planar.Distance(g, p) <= tolerance
	case orb.MultiPoint:
		for _, pt := range g {
			if planar.Distance(pt, p) <= tolerance {
				return true
			}
		}
	case orb.LineString:
		return lineHits(g, p, tolerance)
	case orb.MultiLineString:
		for _, ls := range g {
			if lineHits(ls, p, tolerance) {
				return true
			}
		}
	case orb.Ring:
		return planar.RingContains(g, p) || lineHits(orb.LineString(g), p, tolerance)
	case orb.Polygon:
		return polygonHits(g, p, tolerance)
	case orb.MultiPolygon:
		for _, poly := range g {
			if polygonHits(poly, p, tolerance) {
				return true
			}
		}
	case orb.Collection:
		for _, sub := range g {
			if Hits(sub, p, tolerance) {
				return true
			}
		}
	case orb.Bound:
		return g.Pad(tolerance).Contains(p)
	}
	return false
}

func lineHits(ls orb.LineString, p orb.Point, tolerance float64) bool {
	if len(ls) == 1 {
		return planar.Distance(ls[0], p) <= tolerance
	}
	for i := 1; i < len(ls); i++ {
		if planar.DistanceFromSegment(ls[i-1], ls[i], p) <= tolerance {
			return true
		}
	}
	return false
}

func polygonHits(poly orb.Polygon, p orb.Point, tolerance float64) bool {
	if planar.PolygonContains(poly, p) {
		return true
	}
	for _, r := range poly {
		if lineHits(orb.LineString(r), p, tolerance) {
			return true
		}
	}
	return false
}

// mapPoints returns a copy of g with every point replaced by fn's result.
// fn receives a running vertex index; the closing point of a closed ring gets
// the index of the ring's first point.
func mapPoints(g orb.Geometry, fn func(i int, p orb.Point) orb.Point) orb.Geometry {
	next := 0
	mapLine := func(ls []orb.Point, closed bool) []orb.Point {
		result := make([]orb.Point, len(ls))
		first := next
		for i, p := range ls {
			if closed && i == len(ls)-1 && i > 0 && ls[0] == p {
				result[i] = fn(first, p)
				continue
			}
			result[i] = fn(next, p)
			next++
		}
		return result
	}
	mapPolygon := func(poly orb.Polygon) orb.Polygon {
		result := make(orb.Polygon, len(poly))
		for i, r := range poly {
			result[i] = orb.Ring(mapLine(r, true))
		}
		return result
	}

	var walk func(g orb.Geometry) orb.Geometry
	walk = func(g orb.Geometry) orb.Geometry {
		switch g := g.(type) {
		case orb.Point:
			p := fn(next, g)
			next++
			return p
		case orb.MultiPoint:
			return orb.MultiPoint(mapLine(g, false))
		case orb.LineString:
			return orb.LineString(mapLine(g, false))
		case orb.MultiLineString:
			result := make(orb.MultiLineString, len(g))
			for i, ls := range g {
				result[i] = orb.LineString(mapLine(ls, false))
			}
			return result
		case orb.Ring:
			return orb.Ring(mapLine(g, true))
		case orb.Polygon:
			return mapPolygon(g)
		case orb.MultiPolygon:
			result := make(orb.MultiPolygon, len(g))
			for i, poly := range g {
				result[i] = mapPolygon(poly)
			}
			return result
		case orb.Collection:
			result := make(orb.Collection, len(g))
			for i, sub := range g {
				result[i] = walk(sub)
			}
			return result
		default:
			return g
		}
	}

	return walk(g)
}
