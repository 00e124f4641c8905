// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package glplay is the OpenGL implementation of the gui.GUI interface,
// using GLFW for windowing and input.
//
// The display is drawn as a grid of quads, one per pixel. The vertex buffer
// holds the full (Width+1)*(Height+1) grid of corner points and never
// changes. Each frame only the index buffer is refilled, with two triangles
// for every lit pixel.
package glplay

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gopher8/gopher8/audio/beeper"
	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/gui"
	"github.com/gopher8/gopher8/hardware/video"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.2/glfw"
)

const vertexShaderGlsl = `
	#version 410 core
	in vec2 pos;
	void main() {
		gl_Position = vec4(pos, 0.0, 1.0);
	}` + "\x00"

const fragmentShaderGlsl = `
	#version 410 core
	out vec4 color;
	void main() {
		color = vec4(0.94, 0.94, 0.94, 1.0);
	}` + "\x00"

// GlPlay is the OpenGL implementation of the gui.GUI interface.
type GlPlay struct {
	events chan<- gui.Event

	window *glfw.Window
	snd    *beeper.Beeper

	// index buffer, refilled every frame from the lit pixels.
	indices []uint32
}

// NewGlPlay is the preferred method of initialisation for the GlPlay type.
// Must be called from the main goroutine, with runtime.LockOSThread() in
// effect.
func NewGlPlay(events chan<- gui.Event, scale int) (*GlPlay, error) {
	if scale < 1 {
		scale = 1
	}

	scr := &GlPlay{events: events}

	if err := glfw.Init(); err != nil {
		return nil, curated.Errorf("glplay: %v", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	var err error

	scr.window, err = glfw.CreateWindow(video.Width*scale, video.Height*scale, "Gopher8", nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, curated.Errorf("glplay: %v", err)
	}
	scr.window.MakeContextCurrent()

	scr.indices, err = setupGL()
	if err != nil {
		glfw.Terminate()
		return nil, curated.Errorf("glplay: %v", err)
	}

	scr.window.SetKeyCallback(scr.keyCallback())

	scr.snd, err = beeper.NewBeeper()
	if err != nil {
		glfw.Terminate()
		return nil, err
	}

	return scr, nil
}

// setupGL builds the vertex grid, the shader program and the index buffer.
// The index buffer is returned at full capacity, enough for every pixel to
// be lit at once.
func setupGL() ([]uint32, error) {
	if err := gl.Init(); err != nil {
		return nil, err
	}

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	// corner points of the pixel grid in clip space. point (x,y) is vertex
	// number x*(Height+1)+y
	w, h := video.Width+1, video.Height+1
	grid := make([]float32, w*h*2)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			i := 2 * (x*h + y)
			grid[i] = -1 + float32(x)/float32(video.Width/2)
			grid[i+1] = 1 - float32(y)/float32(video.Height/2)
		}
	}

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(grid)*4, gl.Ptr(grid), gl.STATIC_DRAW)

	indices := make([]uint32, video.Width*video.Height*6)

	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.DYNAMIC_DRAW)

	vertexShader, err := compileShader(gl.VERTEX_SHADER, vertexShaderGlsl)
	if err != nil {
		return nil, err
	}

	fragmentShader, err := compileShader(gl.FRAGMENT_SHADER, fragmentShaderGlsl)
	if err != nil {
		return nil, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.BindFragDataLocation(program, 0, gl.Str("color\x00"))
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
		log := strings.Repeat("\x00", 1+int(length))
		gl.GetProgramInfoLog(program, length, nil, gl.Str(log))
		return nil, fmt.Errorf("program link: %s", log)
	}
	gl.UseProgram(program)

	gl.EnableVertexAttribArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 0, gl.PtrOffset(0))

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)

	gl.ClearColor(0.06, 0.06, 0.06, 1.0)

	if glerr := gl.GetError(); glerr != gl.NO_ERROR {
		return nil, fmt.Errorf("gl error %#x", glerr)
	}

	return indices, nil
}

func compileShader(shaderType uint32, source string) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	src, free := gl.Strs(source)
	defer free()
	gl.ShaderSource(shader, 1, src, nil)
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
		log := strings.Repeat("\x00", 1+int(length))
		gl.GetShaderInfoLog(shader, length, nil, gl.Str(log))
		return 0, fmt.Errorf("shader compile: %s", log)
	}

	return shader, nil
}

func (scr *GlPlay) keyCallback() glfw.KeyCallback {
	keymap := make(map[glfw.Key]uint8)
	for r, k := range gui.KeyboardLayout {
		keymap[glfw.Key(unicode.ToUpper(r))] = k
	}

	return func(window *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}
		pressed := action == glfw.Press

		switch key {
		case glfw.KeyEscape:
			if pressed {
				scr.events <- gui.EventQuit{}
			}
		case glfw.KeyF12:
			if pressed {
				scr.events <- gui.EventScreenshot{}
			}
		default:
			if k, ok := keymap[key]; ok {
				scr.events <- gui.EventKey{Key: k, Pressed: pressed}
			}
		}
	}
}

// SetTitle implements the gui.GUI interface.
func (scr *GlPlay) SetTitle(title string) {
	scr.window.SetTitle("Gopher8: " + title)
}

// Render implements the gui.GUI interface.
func (scr *GlPlay) Render(pixels [video.Height][video.Width]bool) error {
	gl.Clear(gl.COLOR_BUFFER_BIT)

	h := video.Height + 1
	n := 0
	for y := 0; y < video.Height; y++ {
		for x := 0; x < video.Width; x++ {
			if !pixels[y][x] {
				continue
			}

			// corners of the quad covering this pixel
			q1 := uint32(x*h + y)
			q2 := uint32(x*h + y + 1)
			q3 := uint32((x+1)*h + y)
			q4 := uint32((x+1)*h + y + 1)

			scr.indices[n+0] = q1
			scr.indices[n+1] = q2
			scr.indices[n+2] = q3
			scr.indices[n+3] = q2
			scr.indices[n+4] = q3
			scr.indices[n+5] = q4
			n += 6
		}
	}

	if n > 0 {
		gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, n*4, gl.Ptr(scr.indices))
		gl.DrawElements(gl.TRIANGLES, int32(n), gl.UNSIGNED_INT, gl.PtrOffset(0))
	}

	scr.window.SwapBuffers()

	return nil
}

// SetSound implements the gui.GUI interface.
func (scr *GlPlay) SetSound(active bool) {
	scr.snd.SetActive(active)
}

// Service implements the gui.GUI interface.
func (scr *GlPlay) Service() {
	glfw.PollEvents()
	if scr.window.ShouldClose() {
		scr.window.SetShouldClose(false)
		scr.events <- gui.EventQuit{}
	}
}

// End implements the gui.GUI interface.
func (scr *GlPlay) End() error {
	err := scr.snd.End()
	scr.window.Destroy()
	glfw.Terminate()
	return err
}
