package gfx

// Viewport records the framebuffer size last applied by the render loop.
// It is owned by the render thread.
type Viewport struct {
	size    Size
	version uint64
}

func NewViewport(size Size) *Viewport {
	return &Viewport{size: size}
}

func (v *Viewport) Size() Size {
	return v.size
}

// Version increments each time Set changes the size.
func (v *Viewport) Version() uint64 {
	return v.version
}

// Set reports whether size differs from the current one.
func (v *Viewport) Set(size Size) bool {
	if size == v.size {
		return false
	}
	v.size = size
	v.version++
	return true
}
