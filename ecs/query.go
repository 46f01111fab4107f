package ecs

// Query filters entities by required components, forbidden components, and
// required tags. Build one with World.Query and the With/Without/WithTag
// free functions, then walk it with ForEach, the typed ForEach1/2/3, or
// collect ids with Entities.
type Query struct {
	world   *World
	include []TypeID
	exclude []TypeID
	tags    []TagID
}

// NewQuery creates a new query for the world
func NewQuery(world *World) *Query {
	return &Query{
		world:   world,
		include: make([]TypeID, 0),
		exclude: make([]TypeID, 0),
		tags:    make([]TagID, 0),
	}
}

// With adds a component kind every yielded entity must have
func With[T any](q *Query) *Query {
	q.include = append(q.include, TypeIDOf[T]())
	return q
}

// Without adds a component kind yielded entities must not have
func Without[T any](q *Query) *Query {
	q.exclude = append(q.exclude, TypeIDOf[T]())
	return q
}

// WithTag adds a tag kind every yielded entity must carry
func WithTag[T any](q *Query) *Query {
	q.tags = append(q.tags, TagIDOf[T]())
	return q
}

// matches checks if an entity passes every filter term
func (q *Query) matches(entity Entity) bool {
	for _, id := range q.include {
		if !q.world.column(id).Contains(entity) {
			return false
		}
	}
	for _, id := range q.exclude {
		if q.world.column(id).Contains(entity) {
			return false
		}
	}
	for _, id := range q.tags {
		if !q.world.tagStore(id).Has(entity) {
			return false
		}
	}
	return true
}

// pivotColumn picks the smallest required column as the iteration domain.
// Ties break toward the lowest type id so the walk order is deterministic.
func (q *Query) pivotColumn() columnStorage {
	var best columnStorage
	var bestID TypeID
	for _, id := range q.include {
		column := q.world.column(id)
		if best == nil || column.Size() < best.Size() ||
			(column.Size() == best.Size() && id < bestID) {
			best = column
			bestID = id
		}
	}
	return best
}

// pivotTags picks the smallest required tag bitset, lowest tag id on ties.
func (q *Query) pivotTags() *TagStore {
	var best *TagStore
	var bestID TagID
	for _, id := range q.tags {
		tags := q.world.tagStore(id)
		if best == nil || tags.Population() < best.Population() ||
			(tags.Population() == best.Population() && id < bestID) {
			best = tags
			bestID = id
		}
	}
	return best
}

// ForEach walks qualifying entities lazily, yielding each exactly once in
// the pivot's storage order. The walk borrows the world: structurally
// mutating a filtered column, a filtered tag bitset, or the entity set
// during the walk invalidates it. Systems that must mutate mid-iteration
// should collect with Entities first and apply afterwards.
func (q *Query) ForEach(fn func(Entity)) {
	if len(q.include) > 0 {
		for _, entity := range q.pivotColumn().Entities().Data() {
			if q.matches(entity) {
				fn(entity)
			}
		}
		return
	}
	if len(q.tags) > 0 {
		q.pivotTags().ForEach(func(entity Entity) bool {
			if q.matches(entity) {
				fn(entity)
			}
			return true
		})
		return
	}
	// No required components or tags: the live entity set is the domain.
	q.world.allocator.ForEachLive(func(entity Entity) bool {
		if q.matches(entity) {
			fn(entity)
		}
		return true
	})
}

// Entities collects qualifying entity ids into a fresh slice. The slice is
// a snapshot, safe to iterate while mutating the world.
func (q *Query) Entities() []Entity {
	result := make([]Entity, 0)
	q.ForEach(func(entity Entity) {
		result = append(result, entity)
	})
	return result
}

// Count returns the number of qualifying entities.
func (q *Query) Count() int {
	n := 0
	q.ForEach(func(Entity) {
		n++
	})
	return n
}

// requireComponent ensures T is part of the query's required set.
func requireComponent[T any](q *Query) {
	id := TypeIDOf[T]()
	for _, existing := range q.include {
		if existing == id {
			return
		}
	}
	q.include = append(q.include, id)
}

// ForEach1 yields each qualifying entity with a pointer to its T1,
// adding T1 to the required set if the filter does not name it yet.
func ForEach1[T1 any](q *Query, fn func(Entity, *T1)) {
	requireComponent[T1](q)
	pool1 := poolFor[T1](q.world)
	q.ForEach(func(entity Entity) {
		fn(entity, pool1.GetPtr(entity))
	})
}

// ForEach2 yields each qualifying entity with pointers to its T1 and T2.
func ForEach2[T1, T2 any](q *Query, fn func(Entity, *T1, *T2)) {
	requireComponent[T1](q)
	requireComponent[T2](q)
	pool1 := poolFor[T1](q.world)
	pool2 := poolFor[T2](q.world)
	q.ForEach(func(entity Entity) {
		fn(entity, pool1.GetPtr(entity), pool2.GetPtr(entity))
	})
}

// ForEach3 yields each qualifying entity with pointers to its T1, T2, and T3.
func ForEach3[T1, T2, T3 any](q *Query, fn func(Entity, *T1, *T2, *T3)) {
	requireComponent[T1](q)
	requireComponent[T2](q)
	requireComponent[T3](q)
	pool1 := poolFor[T1](q.world)
	pool2 := poolFor[T2](q.world)
	pool3 := poolFor[T3](q.world)
	q.ForEach(func(entity Entity) {
		fn(entity, pool1.GetPtr(entity), pool2.GetPtr(entity), pool3.GetPtr(entity))
	})
}

// Iter1 walks every entity holding a T1
func Iter1[T1 any](w *World, fn func(Entity, *T1)) {
	ForEach1(w.Query(), fn)
}

// Iter2 walks every entity holding both a T1 and a T2
func Iter2[T1, T2 any](w *World, fn func(Entity, *T1, *T2)) {
	ForEach2(w.Query(), fn)
}

// Iter3 walks every entity holding a T1, a T2, and a T3
func Iter3[T1, T2, T3 any](w *World, fn func(Entity, *T1, *T2, *T3)) {
	ForEach3(w.Query(), fn)
}
