// Package board is the entity store of a single level: an id-stable arena of
// entities plus the occupancy queries the rules are evaluated against
package board

import (
	"fmt"

	"github.com/lixenwraith/rockfall/constant"
	"github.com/lixenwraith/rockfall/core"
)

// Removed is the position given to deactivated entities
var Removed = core.Point{X: -1, Y: -1}

// Entity is one arena slot. IDs are indices and are never reused within a level
type Entity struct {
	ID     int
	Kind   core.Kind
	Pos    core.Point
	Facing core.Direction // wall-follower memory, DirNone until first scan
	Active bool
}

// Board owns every entity of a level
type Board struct {
	entities  []*Entity
	grid      *grid
	portalOut core.Point
	hasPortal bool
	player    int
	monster   int
	exit      int
}

// New creates an empty board
func New() *Board {
	return &Board{
		grid:    newGrid(constant.BoardWidth, constant.BoardHeight),
		player:  -1,
		monster: -1,
		exit:    -1,
	}
}

// Add stores a new entity and returns it, the id is the next arena index
func (b *Board) Add(kind core.Kind, p core.Point) (*Entity, error) {
	id := len(b.entities)
	if !b.grid.add(id, p) {
		return nil, fmt.Errorf("board: cannot place %s at %v", kind, p)
	}
	e := &Entity{ID: id, Kind: kind, Pos: p, Active: true}
	b.entities = append(b.entities, e)

	switch kind {
	case core.KindPlayer:
		b.player = id
	case core.KindBigMonster:
		b.monster = id
	case core.KindExit:
		b.exit = id
	}
	return e, nil
}

// AddRing surrounds the play field with light walls one cell outside it
func (b *Board) AddRing() {
	for x := 1; x <= constant.BoardWidth; x++ {
		b.Add(core.KindLightWall, core.Point{X: x, Y: 0})
		b.Add(core.KindLightWall, core.Point{X: x, Y: constant.BoardHeight + 1})
	}
	for y := 1; y <= constant.BoardHeight; y++ {
		b.Add(core.KindLightWall, core.Point{X: 0, Y: y})
		b.Add(core.KindLightWall, core.Point{X: constant.BoardWidth + 1, Y: y})
	}
}

// SetPortalOut records the teleport destination; it is a marker, not an entity
func (b *Board) SetPortalOut(p core.Point) {
	b.portalOut = p
	b.hasPortal = true
}

// PortalOut returns the teleport destination, ok is false when the level has none
func (b *Board) PortalOut() (core.Point, bool) {
	return b.portalOut, b.hasPortal
}

// Len returns the number of arena slots, active or not
func (b *Board) Len() int {
	return len(b.entities)
}

// Entity returns the slot for id, nil when out of range
func (b *Board) Entity(id int) *Entity {
	if id < 0 || id >= len(b.entities) {
		return nil
	}
	return b.entities[id]
}

// Entities returns all slots in id order
func (b *Board) Entities() []*Entity {
	return b.entities
}

// Player returns the player entity, nil if the level has none
func (b *Board) Player() *Entity {
	return b.Entity(b.player)
}

// BigMonster returns the pursuing monster, nil if the level has none
func (b *Board) BigMonster() *Entity {
	return b.Entity(b.monster)
}

// Exit returns the exit entity, nil if the level has none
func (b *Board) Exit() *Entity {
	return b.Entity(b.exit)
}

// BabyMonsters returns ids of active entities that are still baby monsters, in id order
func (b *Board) BabyMonsters() []int {
	var ids []int
	for _, e := range b.entities {
		if e.Active && e.Kind == core.KindBabyMonster {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// Count returns the number of active entities of a kind
func (b *Board) Count(kind core.Kind) int {
	n := 0
	for _, e := range b.entities {
		if e.Active && e.Kind == kind {
			n++
		}
	}
	return n
}

// InBounds reports whether p lies on the 40x16 play field
func InBounds(p core.Point) bool {
	return p.X >= 1 && p.X <= constant.BoardWidth && p.Y >= 1 && p.Y <= constant.BoardHeight
}

// OccupantAt returns the entity occupying p as seen by an asker of the given kind
// Baby monsters share cells, so when several entities are present they are hidden
// from everyone but the player. The lowest id wins among what remains
func (b *Board) OccupantAt(p core.Point, asker core.Kind) (int, bool) {
	ids := b.grid.at(p)
	switch len(ids) {
	case 0:
		return -1, false
	case 1:
		return ids[0], true
	}

	best := -1
	for _, id := range ids {
		if asker != core.KindPlayer && b.entities[id].Kind == core.KindBabyMonster {
			continue
		}
		if best == -1 || id < best {
			best = id
		}
	}
	return best, best != -1
}

// Empty reports whether nothing occupies p from a neutral point of view
func (b *Board) Empty(p core.Point) bool {
	_, ok := b.OccupantAt(p, core.KindNone)
	return !ok
}

// Relocate moves an active entity to p
func (b *Board) Relocate(id int, p core.Point) {
	e := b.Entity(id)
	if e == nil || !e.Active {
		return
	}
	b.grid.remove(id, e.Pos)
	if !b.grid.add(id, p) {
		// Cell full or off grid: keep the entity findable where it was
		b.grid.add(id, e.Pos)
		return
	}
	e.Pos = p
}

// Deactivate removes an entity from play, keeping its slot
func (b *Board) Deactivate(id int) {
	e := b.Entity(id)
	if e == nil || !e.Active {
		return
	}
	b.grid.remove(id, e.Pos)
	e.Active = false
	e.Pos = Removed
}

// SetKind changes an entity's kind in place
func (b *Board) SetKind(id int, kind core.Kind) {
	if e := b.Entity(id); e != nil {
		e.Kind = kind
	}
}

// Within returns active entities inside the square of the given radius around c, in id order
func (b *Board) Within(c core.Point, radius int) []*Entity {
	var out []*Entity
	for _, e := range b.entities {
		if !e.Active {
			continue
		}
		if core.Abs(e.Pos.X-c.X) <= radius && core.Abs(e.Pos.Y-c.Y) <= radius {
			out = append(out, e)
		}
	}
	return out
}
