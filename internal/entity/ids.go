package entity

import "polyline-td/internal/types"

// IDAllocator выдаёт возрастающие идентификаторы сущностей, начиная с 1.
type IDAllocator struct {
	next types.EntityID
}

func NewIDAllocator() *IDAllocator {
	return &IDAllocator{next: 1}
}

func (a *IDAllocator) NewEntity() types.EntityID {
	id := a.next
	a.next++
	return id
}
