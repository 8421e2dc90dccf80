package renderer

import "github.com/kjkrol/cubic/pkg/gfx"

// NewRendererFactory returns a factory the render loop calls on the render
// thread, once its context is current.
func NewRendererFactory(conf gfx.RendererConfig) gfx.RendererFactory {
	return func(ctx gfx.CurrentContext) (gfx.Renderer, error) {
		r := newRenderer(conf)
		if err := r.init(ctx); err != nil {
			return nil, err
		}
		return r, nil
	}
}
