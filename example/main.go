// Example host loop: a GLFW window running a nested menu tree over a
// cleared scene, the way a game would overlay its pause menu.
package main

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-overlay/menu"
	"github.com/go-overlay/menu/backend/opengl"
)

const (
	windowWidth  = 1024
	windowHeight = 768
)

func init() {
	// GLFW event handling must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := glfw.Init(); err != nil {
		log.Fatalf("glfw init: %v", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, "Menu Demo", nil, nil)
	if err != nil {
		log.Fatalf("create window: %v", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		log.Fatalf("gl init: %v", err)
	}

	atlas, err := menu.GoRegularAtlas(14)
	if err != nil {
		log.Fatalf("font atlas: %v", err)
	}

	fbW, fbH := window.GetFramebufferSize()
	renderer, err := opengl.NewRenderer(fbW, fbH, atlas)
	if err != nil {
		log.Fatalf("create renderer: %v", err)
	}
	defer renderer.Delete()

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
		renderer.Resize(width, height)
	})

	input := opengl.NewGLFWInputAdapter(window)

	th := menu.DefaultTheme()
	th.Font = atlas

	ui := menu.New(renderer,
		menu.WithFPSLimit(60),
		menu.WithCustomHandler(func(payload any) {
			fmt.Println("custom action:", payload)
		}),
	)

	root := buildMenus(th)
	ui.SetRoot(root)

	for !window.ShouldClose() {
		ui.Tick()
		glfw.PollEvents()

		if ui.Update(input.Drain()) {
			window.SetShouldClose(true)
		}

		gl.ClearColor(0.08, 0.10, 0.12, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if err := ui.Draw(); err != nil {
			log.Printf("draw: %v", err)
		}

		window.SwapBuffers()
	}

	values, err := ui.CollectValues(true)
	if err != nil {
		log.Printf("collect values: %v", err)
	} else {
		fmt.Println("final settings:", values)
	}
}

// buildMenus assembles a root menu with a settings submenu and a
// two-column extras grid.
func buildMenus(th *menu.Theme) *menu.Menu {
	settings := menu.NewMenu("settings", "Settings", 360, 300,
		menu.WithTheme(th),
		menu.WithPosition(120, 120),
		menu.WithClosePolicy(menu.CloseBack),
	)
	settings.AddSelector("Difficulty", []string{"Easy", "Normal", "Hard"},
		menu.WithID("difficulty"))
	settings.AddSelector("Resolution", []string{"1280x720", "1920x1080", "2560x1440"},
		menu.WithID("resolution"))
	settings.AddTextInput("Player Name", menu.WithID("player"), menu.WithMaxLength(16))
	settings.AddButton("Back", menu.BackAction())

	extras := menu.NewMenu("extras", "Extras", 420, 260,
		menu.WithTheme(th),
		menu.WithPosition(160, 160),
		menu.WithClosePolicy(menu.CloseBack),
		menu.WithColumns(2, 6),
	)
	for i := 1; i <= 10; i++ {
		n := i
		extras.AddButton(fmt.Sprintf("Cheat %d", n),
			menu.CustomAction(fmt.Sprintf("cheat-%d", n)))
	}
	extras.AddButton("Back", menu.BackAction())

	root := menu.NewMenu("main", "Main Menu", 320, 280,
		menu.WithTheme(th),
		menu.WithPosition(80, 80),
		menu.WithClosePolicy(menu.CloseExit),
	)
	root.AddLabel("Demo Overlay")
	root.AddButton("Resume", menu.CallbackAction(func() {
		fmt.Println("resume pressed")
	}))
	root.AddSubmenu("Settings", settings)
	root.AddSubmenu("Extras", extras)
	root.AddButton("Quit", menu.ExitAction())
	return root
}
