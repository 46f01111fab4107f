package ecs

// TagStore tracks which entities carry one tag kind. A tag has no payload,
// so presence is a single bit keyed by entity id.
type TagStore struct {
	bits Bitset
}

// NewTagStore creates a new tag store
func NewTagStore() *TagStore {
	return &TagStore{}
}

// Add tags an entity. Idempotent: tagging a tagged entity leaves one bit set.
func (ts *TagStore) Add(entity Entity) {
	if entity.IsValid() {
		ts.bits.Set(uint32(entity))
	}
}

// Remove untags an entity. Untagging an untagged entity is a no-op.
func (ts *TagStore) Remove(entity Entity) {
	if entity.IsValid() {
		ts.bits.Clear(uint32(entity))
	}
}

// Has reports whether the entity carries this tag.
func (ts *TagStore) Has(entity Entity) bool {
	return entity.IsValid() && ts.bits.Test(uint32(entity))
}

// ClearEntity is an alias for Remove, used by the world's destroy cascade.
func (ts *TagStore) ClearEntity(entity Entity) {
	ts.Remove(entity)
}

// Population returns the number of tagged entities.
func (ts *TagStore) Population() int {
	return ts.bits.Population()
}

// FirstSetAfter returns the first tagged entity with id >= after.
// The second result is false when no such entity exists.
func (ts *TagStore) FirstSetAfter(after Entity) (Entity, bool) {
	i, ok := ts.bits.NextSet(uint32(after))
	return Entity(i), ok
}

// ForEach walks tagged entities in increasing id order. The callback
// returns true to continue iteration, false to stop.
func (ts *TagStore) ForEach(fn func(Entity) bool) {
	ts.bits.ForEach(func(i uint32) bool {
		return fn(Entity(i))
	})
}

// Reset untags every entity, keeping the allocation.
func (ts *TagStore) Reset() {
	ts.bits.Reset()
}
