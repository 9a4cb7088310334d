package ecs

import "github.com/kamstrup/intmap"

// typeIndex tracks the set of entities currently holding one component
// type. Membership lookups go through an int-keyed map; the id slice
// preserves a stable iteration order for queries.
type typeIndex struct {
	tag     ComponentType
	ids     []EntityID
	members *intmap.Map[EntityID, *Entity]
}

func newTypeIndex(tag ComponentType) *typeIndex {
	return &typeIndex{
		tag:     tag,
		members: intmap.New[EntityID, *Entity](64),
	}
}

func (ti *typeIndex) add(e *Entity) {
	if _, ok := ti.members.Get(e.id); ok {
		return
	}
	ti.members.Put(e.id, e)
	ti.ids = append(ti.ids, e.id)
}

func (ti *typeIndex) remove(id EntityID) {
	if _, ok := ti.members.Get(id); !ok {
		return
	}
	ti.members.Del(id)
	for i, candidate := range ti.ids {
		if candidate == id {
			ti.ids = append(ti.ids[:i], ti.ids[i+1:]...)
			return
		}
	}
}

func (ti *typeIndex) contains(id EntityID) bool {
	_, ok := ti.members.Get(id)
	return ok
}

func (ti *typeIndex) size() int {
	return len(ti.ids)
}
