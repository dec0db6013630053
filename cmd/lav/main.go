// Command lav runs a Lua-scripted update/draw loop in a window.
//
// The script (main.lua by default) drives the engine through the global
// lav table; the window's GPU device is shared with the rendering backend.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/lav"
	"github.com/gogpu/lav/backend/wgpu"
	"github.com/gogpu/lav/script"
)

func main() {
	var (
		scriptPath = flag.String("script", "main.lua", "Lua script to run")
		width      = flag.Int("width", 800, "window width")
		height     = flag.Int("height", 600, "window height")
	)
	flag.Parse()

	if _, err := os.Stat(*scriptPath); err != nil {
		log.Fatalf("script %s does not exist", *scriptPath)
	}

	// Event-driven rendering: an animation token keeps the loop running
	// at VSync and pausing drops CPU use to zero.
	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle("lav").
		WithSize(*width, *height).
		WithContinuousRender(false))

	var (
		backend   *wgpu.Backend
		runtime   *script.Runtime
		animToken *gogpu.AnimationToken
	)

	app.OnDraw(func(dc *gogpu.Context) {
		w, h := dc.Width(), dc.Height()
		if w <= 0 || h <= 0 {
			return
		}

		// First frame: the GPU device exists now, so the backend can
		// share it and the script can start.
		if backend == nil {
			provider := app.GPUContextProvider()
			if provider == nil {
				return
			}
			var err error
			backend, err = wgpu.New(
				wgpu.WithDeviceProvider(provider),
				wgpu.WithSize(w, h),
			)
			if err != nil {
				log.Fatalf("backend init: %v", err)
			}

			runtime = script.New(lav.New(backend))
			if err := runtime.LoadFile(*scriptPath); err != nil {
				log.Fatalf("%v", err)
			}
			animToken = app.StartAnimation()
		}

		// Window resized since the last frame: recreate before drawing.
		if bw, bh := backend.Size(); bw != w || bh != h {
			backend.Resize(w, h)
			runtime.Do(func(g *lav.Graphics) {
				g.RequestSwapchainRecreation()
			})
		}

		// Render straight into this frame's surface view so the script's
		// present lands on screen. The view is only valid for this frame.
		sv := dc.SurfaceView()
		if sv == nil {
			return
		}
		backend.RenderTo(sv.HalTextureView())
		defer backend.RenderTo(nil)

		runtime.Timer().Step()
		if err := runtime.Draw(); err != nil {
			log.Printf("draw: %v", err)
		}
	})

	// Space pauses and resumes the frame loop.
	paused := false
	app.EventSource().OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		if key != gpucontext.KeySpace {
			return
		}
		paused = !paused
		if paused {
			if animToken != nil {
				animToken.Stop()
				animToken = nil
			}
		} else {
			animToken = app.StartAnimation()
		}
	})

	app.OnClose(func() {
		if animToken != nil {
			animToken.Stop()
		}
		if runtime != nil {
			runtime.Close()
		}
		if backend != nil {
			backend.Close()
		}
	})

	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
