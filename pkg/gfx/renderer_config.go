package gfx

import "image/color"

// RendererConfig describes the frame content. ClearColor defaults to opaque black.
type RendererConfig struct {
	ClearColor color.Color
}
