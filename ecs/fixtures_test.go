package ecs

// Component and tag kinds shared by the package tests. Registration is
// lazy and idempotent, so each suite can reference these directly.

type Position struct {
	X, Y float32
}

type Velocity struct {
	X, Y float32
}

type Health struct {
	Value int
}

type Damage struct {
	Value int
}

type Data struct {
	Name string
	Gold int
}

type AliveTag struct{}

type TagA struct{}

type TagB struct{}
