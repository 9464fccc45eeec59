package shadow

import "github.com/wavetap/wavetap/al"

// Registry is the full shadow of live API state: every open device,
// every context, their sources and buffers, and which context is
// current. It is not safe for concurrent use; the recorder serializes
// all access under its call lock.
type Registry struct {
	devices map[al.DeviceID]*Device
	devOrd  []al.DeviceID

	contexts map[al.ContextID]*Context
	ctxOrd   []al.ContextID

	current *Context
}

func NewRegistry() *Registry {
	return &Registry{
		devices:  make(map[al.DeviceID]*Device),
		contexts: make(map[al.ContextID]*Context),
	}
}

// Device returns the shadow device for id, or nil.
func (g *Registry) Device(id al.DeviceID) *Device {
	return g.devices[id]
}

// Devices returns all open device ids in open order.
func (g *Registry) Devices() []al.DeviceID {
	out := make([]al.DeviceID, len(g.devOrd))
	copy(out, g.devOrd)
	return out
}

// Context returns the shadow context for id, or nil.
func (g *Registry) Context(id al.ContextID) *Context {
	return g.contexts[id]
}

// Contexts returns all live context ids in creation order.
func (g *Registry) Contexts() []al.ContextID {
	out := make([]al.ContextID, len(g.ctxOrd))
	copy(out, g.ctxOrd)
	return out
}

// Current returns the current context's shadow, or nil when detached.
func (g *Registry) Current() *Context {
	return g.current
}

func (g *Registry) addDevice(id al.DeviceID, capture bool) *Device {
	if d, ok := g.devices[id]; ok {
		return d
	}
	d := newDevice(id, capture)
	g.devices[id] = d
	g.devOrd = append(g.devOrd, id)
	return d
}

func (g *Registry) removeDevice(id al.DeviceID) {
	if _, ok := g.devices[id]; !ok {
		return
	}
	delete(g.devices, id)
	for i, d := range g.devOrd {
		if d == id {
			g.devOrd = append(g.devOrd[:i], g.devOrd[i+1:]...)
			break
		}
	}
}

func (g *Registry) addContext(id al.ContextID, dev al.DeviceID) *Context {
	if c, ok := g.contexts[id]; ok {
		return c
	}
	c := newContext(id, dev)
	g.contexts[id] = c
	g.ctxOrd = append(g.ctxOrd, id)
	return c
}

func (g *Registry) removeContext(id al.ContextID) {
	c, ok := g.contexts[id]
	if !ok {
		return
	}
	if g.current == c {
		g.current = nil
	}
	delete(g.contexts, id)
	for i, x := range g.ctxOrd {
		if x == id {
			g.ctxOrd = append(g.ctxOrd[:i], g.ctxOrd[i+1:]...)
			break
		}
	}
}

func (g *Registry) setCurrent(id al.ContextID) {
	if id == 0 {
		g.current = nil
		return
	}
	g.current = g.contexts[id]
}
