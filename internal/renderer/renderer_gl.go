package renderer

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/kjkrol/cubic/pkg/gfx"
)

type renderer struct {
	clearColor  [4]float32
	version     string
	initialized bool
}

func newRenderer(conf gfx.RendererConfig) *renderer {
	return &renderer{
		clearColor: clearColor(conf),
	}
}

func (r *renderer) init(ctx gfx.CurrentContext) error {
	if r.initialized {
		return nil
	}
	if err := gl.InitWithProcAddrFunc(ctx.ProcAddress); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	raw := gl.GetString(gl.VERSION)
	if raw == nil {
		return errors.New("gl: GL_VERSION is not available")
	}
	version, err := decodeVersion(gl.GoStr(raw))
	if err != nil {
		return err
	}
	r.version = version

	gl.Disable(gl.DEPTH_TEST)
	r.initialized = true
	return nil
}

func (r *renderer) Version() string {
	return r.version
}

func (r *renderer) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (r *renderer) Render() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.ClearColor(r.clearColor[0], r.clearColor[1], r.clearColor[2], r.clearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Close releases nothing yet: the frame content owns no GL objects.
func (r *renderer) Close() {
	r.initialized = false
}

func decodeVersion(version string) (string, error) {
	if version == "" {
		return "", errors.New("gl: empty GL_VERSION string")
	}
	if !utf8.ValidString(version) {
		return "", fmt.Errorf("gl: GL_VERSION is not valid UTF-8: %q", version)
	}
	return version, nil
}
