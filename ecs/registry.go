package ecs

import (
	"reflect"
	"sync"
)

// TypeID is the dense identifier assigned to a registered component kind.
type TypeID uint32

// TagID is the dense identifier assigned to a registered tag kind.
type TagID uint32

// typeRegistry is the process-wide registry binding component and tag kinds
// to dense ids. Ids are assigned on first registration, cached by
// reflect.Type, and stable for the process lifetime, so every world agrees
// on the column index of a given kind. The mutex is taken by every
// registration and every lookup (TypeIDOf, TagIDOf, ComponentCount,
// TagCount); after startup the maps are only read.
type typeRegistry struct {
	mu              sync.Mutex
	componentIDs    map[reflect.Type]TypeID
	columnFactories []func() columnStorage
	tagIDs          map[reflect.Type]TagID
}

var registry = &typeRegistry{
	componentIDs: make(map[reflect.Type]TypeID),
	tagIDs:       make(map[reflect.Type]TagID),
}

// RegisterComponent enrolls T in the process-wide registry and returns its
// id. The first call assigns the id and records a column factory; repeat
// calls return the cached id. Intended to run at program startup, before
// the first world exists.
func RegisterComponent[T any]() TypeID {
	t := reflect.TypeOf((*T)(nil)).Elem()

	registry.mu.Lock()
	defer registry.mu.Unlock()

	if id, exists := registry.componentIDs[t]; exists {
		return id
	}

	id := TypeID(len(registry.columnFactories))
	registry.componentIDs[t] = id
	registry.columnFactories = append(registry.columnFactories, func() columnStorage {
		return NewComponentPool[T]()
	})
	return id
}

// TypeIDOf returns the id bound to component kind T, registering it on
// first access.
func TypeIDOf[T any]() TypeID {
	return RegisterComponent[T]()
}

// RegisterTag enrolls the zero-sized marker type T as a tag kind and
// returns its id. Idempotent, like RegisterComponent.
func RegisterTag[T any]() TagID {
	t := reflect.TypeOf((*T)(nil)).Elem()

	registry.mu.Lock()
	defer registry.mu.Unlock()

	if id, exists := registry.tagIDs[t]; exists {
		return id
	}

	id := TagID(len(registry.tagIDs))
	registry.tagIDs[t] = id
	return id
}

// TagIDOf returns the id bound to tag kind T, registering it on first access.
func TagIDOf[T any]() TagID {
	return RegisterTag[T]()
}

// ComponentCount returns the number of registered component kinds.
func ComponentCount() int {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	return len(registry.columnFactories)
}

// TagCount returns the number of registered tag kinds.
func TagCount() int {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	return len(registry.tagIDs)
}

// newColumn instantiates a column for the given registered component kind.
func newColumn(id TypeID) columnStorage {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	return registry.columnFactories[id]()
}
