package ecs

// SparseSet is a data structure that provides O(1) insertion, deletion, and lookup
// It's the foundation for efficient component storage in the ECS
type SparseSet struct {
	sparse []int32  // Maps entity id to dense array index (-1 means not present)
	dense  []Entity // Packed array of entities
	size   int      // Current number of elements
}

// NewSparseSet creates a new sparse set
func NewSparseSet() *SparseSet {
	return &SparseSet{
		sparse: make([]int32, 0),
		dense:  make([]Entity, 0),
		size:   0,
	}
}

// ensureCapacity ensures the sparse array can hold the given entity id
func (ss *SparseSet) ensureCapacity(entity Entity) {
	needed := int(entity) + 1
	if len(ss.sparse) < needed {
		oldLen := len(ss.sparse)
		if cap(ss.sparse) >= needed {
			ss.sparse = ss.sparse[:needed]
		} else {
			newSparse := make([]int32, needed, needed*2)
			copy(newSparse, ss.sparse)
			ss.sparse = newSparse
		}
		// Initialize new slots to -1 (not present)
		for i := oldLen; i < needed; i++ {
			ss.sparse[i] = -1
		}
	}
}

// Contains checks if an entity exists in the set
func (ss *SparseSet) Contains(entity Entity) bool {
	if !entity.IsValid() {
		return false
	}
	if int(entity) >= len(ss.sparse) {
		return false
	}
	denseIndex := ss.sparse[entity]
	return denseIndex >= 0 && int(denseIndex) < ss.size && ss.dense[denseIndex] == entity
}

// Insert adds an entity to the set
func (ss *SparseSet) Insert(entity Entity) bool {
	if !entity.IsValid() {
		return false
	}
	if ss.Contains(entity) {
		return false // Already present
	}

	ss.ensureCapacity(entity)
	ss.sparse[entity] = int32(ss.size)

	// Grow dense array if needed
	if len(ss.dense) <= ss.size {
		ss.dense = append(ss.dense, entity)
	} else {
		ss.dense[ss.size] = entity
	}

	ss.size++
	return true
}

// Remove removes an entity from the set using swap-and-pop
func (ss *SparseSet) Remove(entity Entity) bool {
	if !ss.Contains(entity) {
		return false
	}

	denseIndex := ss.sparse[entity]
	lastIndex := int32(ss.size - 1)

	if denseIndex != lastIndex {
		// Move last element to the removed element's position
		lastEntity := ss.dense[lastIndex]
		ss.dense[denseIndex] = lastEntity
		ss.sparse[lastEntity] = denseIndex
	}

	ss.sparse[entity] = -1
	ss.size--

	return true
}

// Size returns the number of entities in the set
func (ss *SparseSet) Size() int {
	return ss.size
}

// Empty checks if the set is empty
func (ss *SparseSet) Empty() bool {
	return ss.size == 0
}

// Clear removes all entities from the set
func (ss *SparseSet) Clear() {
	ss.size = 0
	for i := range ss.sparse {
		ss.sparse[i] = -1
	}
}

// Data returns the raw dense array (for iteration)
func (ss *SparseSet) Data() []Entity {
	return ss.dense[:ss.size]
}

// At returns the entity at the given dense index
func (ss *SparseSet) At(index int) Entity {
	if index < 0 || index >= ss.size {
		return NullEntity
	}
	return ss.dense[index]
}

// Index returns the dense index of an entity, or -1 if not found
func (ss *SparseSet) Index(entity Entity) int {
	if !ss.Contains(entity) {
		return -1
	}
	return int(ss.sparse[entity])
}

// ForEach iterates over all entities in the set in storage order
func (ss *SparseSet) ForEach(fn func(Entity)) {
	for i := 0; i < ss.size; i++ {
		fn(ss.dense[i])
	}
}

// Swap swaps two entities in the dense array (useful for sorting)
func (ss *SparseSet) Swap(i, j int) {
	if i < 0 || i >= ss.size || j < 0 || j >= ss.size {
		return
	}

	entityI := ss.dense[i]
	entityJ := ss.dense[j]

	ss.dense[i] = entityJ
	ss.dense[j] = entityI

	ss.sparse[entityI] = int32(j)
	ss.sparse[entityJ] = int32(i)
}

// Sort sorts the entities using the provided comparison function
func (ss *SparseSet) Sort(less func(Entity, Entity) bool) {
	for i := 0; i < ss.size-1; i++ {
		for j := 0; j < ss.size-i-1; j++ {
			if less(ss.dense[j+1], ss.dense[j]) {
				ss.Swap(j, j+1)
			}
		}
	}
}

// ShrinkToFit trims the dense array to the current size. The sparse array
// keeps its high-water length so lookups stay branch-free.
func (ss *SparseSet) ShrinkToFit() {
	if ss.size < len(ss.dense) {
		dense := make([]Entity, ss.size)
		copy(dense, ss.dense[:ss.size])
		ss.dense = dense
	}
}
