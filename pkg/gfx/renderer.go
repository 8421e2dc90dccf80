package gfx

// Renderer issues the per-frame GL work. It is created and used on the render
// thread only, after the context has been made current there.
type Renderer interface {
	Version() string
	Viewport(width, height int)
	Render()
	Close()
}

// RendererFactory loads the graphics function table through the current
// context and returns a Renderer bound to it.
type RendererFactory func(ctx CurrentContext) (Renderer, error)
