package ecs

import "github.com/milk9111/chaser/ecs/component"

// Components are stored boxed as *T so ForEach can mutate them in place.

func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value T) error {
	return w.AddComponent(e, handle.Kind().ID(), &value)
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.RemoveComponent(e, handle.Kind().ID())
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.HasComponent(e, handle.Kind().ID())
}

func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (T, bool) {
	var zero T
	ptr, ok := getPtr(w, e, handle)
	if !ok {
		return zero, false
	}
	return *ptr, true
}

// ForEach calls fn with a pointer to every stored T. Writes through the
// pointer are visible to later readers without an Add.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(e Entity, value *T)) {
	if w == nil || fn == nil {
		return
	}
	for _, e := range w.Query(handle.Kind()) {
		if ptr, ok := getPtr(w, e, handle); ok {
			fn(e, ptr)
		}
	}
}

// Update applies fn to e's T in place and reports whether e had one.
func Update[T any](w *World, e Entity, handle component.ComponentHandle[T], fn func(value *T)) bool {
	ptr, ok := getPtr(w, e, handle)
	if !ok || fn == nil {
		return false
	}
	fn(ptr)
	return true
}

func getPtr[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	value, ok := w.GetComponent(e, handle.Kind().ID())
	if !ok {
		return nil, false
	}
	ptr, ok := value.(*T)
	if !ok || ptr == nil {
		return nil, false
	}
	return ptr, true
}
