package renderer

import (
	"image/color"

	"github.com/kjkrol/cubic/pkg/gfx"
)

func clearColor(conf gfx.RendererConfig) [4]float32 {
	if conf.ClearColor == nil {
		return [4]float32{0, 0, 0, 1}
	}
	return colorToFloat(conf.ClearColor)
}

func colorToFloat(c color.Color) [4]float32 {
	if c == nil {
		return [4]float32{}
	}
	r, g, b, a := c.RGBA()
	const inv = 1.0 / 65535.0
	return [4]float32{
		float32(r) * inv,
		float32(g) * inv,
		float32(b) * inv,
		float32(a) * inv,
	}
}
