package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The Move/Damage/Health triad used by the update-loop tests.

type moveSystem struct {
	*BaseSystem
}

func newMoveSystem() *moveSystem {
	return &moveSystem{BaseSystem: NewBaseSystem("MoveSystem")}
}

func (ms *moveSystem) Update(world *World) {
	q := world.Query()
	WithTag[AliveTag](q)
	ForEach2(q, func(_ Entity, pos *Position, vel *Velocity) {
		pos.X += vel.X
		pos.Y += vel.Y
	})
}

type damageSystem struct {
	*BaseSystem
}

func newDamageSystem() *damageSystem {
	return &damageSystem{BaseSystem: NewBaseSystem("DamageSystem")}
}

func (ds *damageSystem) Update(world *World) {
	q := world.Query()
	WithTag[AliveTag](q)
	ForEach1(q, func(_ Entity, damage *Damage) {
		damage.Value = 25
	})
}

type healthSystem struct {
	*BaseSystem
}

func newHealthSystem() *healthSystem {
	return &healthSystem{BaseSystem: NewBaseSystem("HealthSystem")}
}

func (hs *healthSystem) Update(world *World) {
	q := world.Query()
	WithTag[AliveTag](q)
	ForEach2(q, func(entity Entity, health *Health, damage *Damage) {
		health.Value -= damage.Value
		if health.Value <= 0 {
			health.Value = 0
			RemoveTag[AliveTag](world, entity)
		}
	})
}

func TestSystemManagerOrder(t *testing.T) {
	w := NewWorld()

	var order []string
	for _, name := range []string{"first", "second", "third"} {
		name := name
		w.AddSystem(NewSystemFunc(name, func(*World) {
			order = append(order, name)
		}))
	}

	w.UpdateSystems()
	assert.Equal(t, []string{"first", "second", "third"}, order)

	w.UpdateSystems()
	assert.Equal(t, []string{"first", "second", "third", "first", "second", "third"}, order)
}

func TestSystemEnableDisable(t *testing.T) {
	w := NewWorld()
	calls := 0
	sys := NewSystemFunc("counted", func(*World) { calls++ })
	w.AddSystem(sys)

	w.UpdateSystems()
	assert.Equal(t, 1, calls)

	w.DisableSystem(sys)
	w.UpdateSystems()
	assert.Equal(t, 1, calls)

	w.EnableSystem(sys)
	w.UpdateSystems()
	assert.Equal(t, 2, calls)
}

func TestSystemRemove(t *testing.T) {
	w := NewWorld()
	calls := 0
	sys := NewSystemFunc("removable", func(*World) { calls++ })
	w.AddSystem(sys)
	w.RemoveSystem(sys)

	w.UpdateSystems()
	assert.Equal(t, 0, calls)
	assert.Empty(t, w.GetSystemManager().GetSystems())
}

func TestMoveDamageHealthTriad(t *testing.T) {
	w := NewWorld()

	w.AddSystem(newMoveSystem())
	w.AddSystem(newDamageSystem())
	w.AddSystem(newHealthSystem())

	entities := make([]Entity, 3)
	for i := range entities {
		entities[i] = w.CreateEntity()
		AddComponent(w, entities[i], Position{X: 0, Y: 0})
		AddComponent(w, entities[i], Velocity{X: 1, Y: 1})
		AddComponent(w, entities[i], Health{Value: 50})
		AddComponent(w, entities[i], Damage{Value: 0})
		AddTag[AliveTag](w, entities[i])
	}

	w.UpdateSystems()
	w.UpdateSystems()

	for _, e := range entities {
		pos, ok := GetComponent[Position](w, e)
		require.True(t, ok)
		assert.Equal(t, Position{X: 2, Y: 2}, pos)

		damage, ok := GetComponent[Damage](w, e)
		require.True(t, ok)
		assert.Equal(t, 25, damage.Value)

		health, ok := GetComponent[Health](w, e)
		require.True(t, ok)
		assert.Equal(t, 0, health.Value)

		assert.False(t, HasTag[AliveTag](w, e))
	}

	// A third pass is inert: nothing is tagged alive anymore.
	w.UpdateSystems()
	for _, e := range entities {
		pos, _ := GetComponent[Position](w, e)
		assert.Equal(t, Position{X: 2, Y: 2}, pos)
		damage, _ := GetComponent[Damage](w, e)
		assert.Equal(t, 25, damage.Value)
		health, _ := GetComponent[Health](w, e)
		assert.Equal(t, 0, health.Value)
	}
}

func TestSystemAdapters(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	AddComponent(w, e, Position{X: 1})
	AddComponent(w, e, Velocity{X: 2})

	w.AddSystem(NewSystem2("move", func(_ *World, _ Entity, pos *Position, vel *Velocity) {
		pos.X += vel.X
	}))
	w.AddSystem(NewSystem1("probe", func(_ *World, _ Entity, pos *Position) {
		assert.Equal(t, float32(3), pos.X)
	}))

	w.UpdateSystems()

	got, _ := GetComponent[Position](w, e)
	assert.Equal(t, float32(3), got.X)
	assert.Equal(t, "move", w.GetSystemManager().GetSystems()[0].Name())
}
