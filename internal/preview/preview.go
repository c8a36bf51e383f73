// Package preview shows a generated atlas in a desktop window so tile
// art can be eyeballed without launching the game.
package preview

import (
	"fmt"
	"image"
	"runtime"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

const windowScale = 4 // window pixels per atlas pixel at startup

// glOffset converts a byte offset to unsafe.Pointer for GL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Show opens a window displaying img scaled to fit, with a checker
// behind transparent pixels, until the window is closed or Escape is
// pressed. Must be called from the main goroutine.
func Show(img *image.RGBA, tilesPerSide int) error {
	runtime.LockOSThread()

	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	window, err := initWindow(w*windowScale, h*windowScale)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	prog, err := linkProgram(atlasVertSrc, atlasFragSrc)
	if err != nil {
		return fmt.Errorf("atlas program: %w", err)
	}
	defer gl.DeleteProgram(prog)

	// Unit quad, 2 triangles.
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	defer gl.DeleteVertexArrays(1, &vao)
	defer gl.DeleteBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	quadVerts := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))

	// Atlas texture. Tiles must stay pixel-stable: NEAREST, no mipmaps,
	// clamped edges.
	var tex uint32
	gl.GenTextures(1, &tex)
	defer gl.DeleteTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(w), int32(h), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix),
	)

	gl.UseProgram(prog)
	uScale := gl.GetUniformLocation(prog, gl.Str("uScale\x00"))
	uGrid := gl.GetUniformLocation(prog, gl.Str("uGrid\x00"))
	uTex := gl.GetUniformLocation(prog, gl.Str("uTex\x00"))
	gl.Uniform1i(uTex, 0)
	gl.Uniform2f(uGrid, float32(tilesPerSide), float32(tilesPerSide))

	gl.Disable(gl.DEPTH_TEST)
	gl.ClearColor(0.12, 0.12, 0.13, 1.0)

	for !window.ShouldClose() {
		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		// Letterbox: largest centred rectangle with the atlas aspect.
		sx, sy := float32(1), float32(1)
		fw, fh := float32(fbW), float32(fbH)
		if fw/fh > float32(w)/float32(h) {
			sx = (fh * float32(w) / float32(h)) / fw
		} else {
			sy = (fw * float32(h) / float32(w)) / fh
		}

		gl.Viewport(0, 0, int32(fbW), int32(fbH))
		gl.Clear(gl.COLOR_BUFFER_BIT)

		gl.UseProgram(prog)
		gl.BindVertexArray(vao)
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, tex)
		gl.Uniform2f(uScale, sx, sy)
		gl.DrawArrays(gl.TRIANGLES, 0, 6)

		window.SwapBuffers()
	}
	return nil
}

func initWindow(width, height int) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err := glfw.CreateWindow(width, height, "Atlas Preview", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	return window, nil
}
