package layout

import (
	"github.com/milk9111/anchorlayout/ecs"
	"github.com/milk9111/anchorlayout/ecs/component"
)

// ClipUnlinkPolicy decides what happens to the dependency edge of the previous
// clipper when a clip relation is re-pointed.
type ClipUnlinkPolicy int

const (
	// ClipUnlinkPreserve leaves the old clipper's edge in the graph.
	ClipUnlinkPreserve ClipUnlinkPolicy = iota
	// ClipUnlinkRelease emits ParentingCleared for the old clipper.
	ClipUnlinkRelease
)

// Clip restricts the hit-test bound of an entity to the bound of its clipper.
// The clipper is a weak reference.
type Clip struct {
	Policy ClipUnlinkPolicy

	clipper ecs.Entity
	owner   ecs.Entity
	bus     *ecs.EventBus
}

var ClipComponent = component.NewComponent[Clip]()

// Clipper returns the current clipper; the zero Entity means none.
func (c *Clip) Clipper() ecs.Entity { return c.clipper }

// SetClipper re-points the relation. A change emits ParentingAdded for the new
// clipper and EntityChanged for the owner.
func (c *Clip) SetClipper(clipper ecs.Entity) {
	if clipper == c.clipper {
		return
	}
	prev := c.clipper
	c.clipper = clipper
	if c.Policy == ClipUnlinkRelease && prev.Valid() {
		ecs.Publish(c.bus, ParentingCleared{Parent: prev, Child: c.owner})
	}
	if clipper.Valid() {
		ecs.Publish(c.bus, ParentingAdded{Parent: clipper, Child: c.owner})
	}
	ecs.Publish(c.bus, EntityChanged{Entity: c.owner})
}

// release drops the edge to the current clipper regardless of policy.
func (c *Clip) release() {
	if !c.clipper.Valid() {
		return
	}
	ecs.Publish(c.bus, ParentingCleared{Parent: c.clipper, Child: c.owner})
	c.clipper = 0
}
