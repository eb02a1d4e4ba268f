package vm

import "reflect"

// Named is an object that has a name.
type Named interface {
	Name() string
}

// A HookPos names a point in a component where hooks run.
type HookPos struct {
	Name string
}

// HookCtx is what a hook receives. Item and Detail depend on Pos; every
// position documents them.
type HookCtx struct {
	Domain Named
	Pos    *HookPos
	Item   any
	Detail any
}

// A Hook observes a component.
type Hook interface {
	Func(ctx HookCtx)
}

// HookFunc turns a function into a Hook.
type HookFunc func(ctx HookCtx)

// Func calls f.
func (f HookFunc) Func(ctx HookCtx) {
	f(ctx)
}

// Hookable is a component that runs hooks.
type Hookable interface {
	Named

	// AcceptHook registers hook at the given positions, or at every
	// position if none is given.
	AcceptHook(hook Hook, positions ...*HookPos)

	// NumHooks returns the number of distinct hooks registered.
	NumHooks() int
}

type hookEntry struct {
	hook      Hook
	positions map[*HookPos]bool
}

func (e *hookEntry) listensAt(pos *HookPos) bool {
	return e.positions == nil || e.positions[pos]
}

// HookableBase keeps the hooks of a component. Components embed it and
// provide Name.
type HookableBase struct {
	entries []*hookEntry
}

// AcceptHook registers hook at the given positions, or at every position if
// none is given. Registering a hook again widens the positions it listens
// at.
func (h *HookableBase) AcceptHook(hook Hook, positions ...*HookPos) {
	entry := h.find(hook)
	if entry == nil {
		entry = &hookEntry{hook: hook, positions: map[*HookPos]bool{}}
		h.entries = append(h.entries, entry)
	}

	if len(positions) == 0 {
		entry.positions = nil
		return
	}

	if entry.positions == nil {
		return
	}

	for _, pos := range positions {
		entry.positions[pos] = true
	}
}

// find returns the entry of hook. Hooks of incomparable types, such as
// HookFunc, never match an earlier registration.
func (h *HookableBase) find(hook Hook) *hookEntry {
	if !reflect.TypeOf(hook).Comparable() {
		return nil
	}

	for _, e := range h.entries {
		if e.hook == hook {
			return e
		}
	}

	return nil
}

// NumHooks returns the number of distinct hooks registered.
func (h *HookableBase) NumHooks() int {
	return len(h.entries)
}

// Hooks returns the registered hooks in registration order.
func (h *HookableBase) Hooks() []Hook {
	hooks := make([]Hook, len(h.entries))
	for i, e := range h.entries {
		hooks[i] = e.hook
	}

	return hooks
}

// InvokeHook runs the hooks that listen at ctx.Pos in registration order.
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, e := range h.entries {
		if e.listensAt(ctx.Pos) {
			e.hook.Func(ctx)
		}
	}
}
