// Package layout resolves entity rectangles declared relative to other
// entities through anchors, margins and arithmetic constraints.
//
// Geometry lives in three components: Rect (position, size, z, rotation,
// visibility), Anchors (edge references, margins, constraints) and Clip (hit
// test clipping). A PropagationSystem drains RectChanged events once per tick,
// expands them through the dependency graph and re-resolves every affected
// entity. Each tick moves a change exactly one hop along an anchor chain, so a
// chain N entities deep needs N ticks to settle; TicksToSettle reports that
// number for a given entity.
package layout
