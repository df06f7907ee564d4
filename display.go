package main

import (
	"fmt"
	"os"
	"runtime"

	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"archive-stream/pkg/playback"
)

// videoDrivers lists the SDL video drivers to try, SDL_VIDEODRIVER first.
// An empty entry lets SDL pick on its own.
func videoDrivers(envDriver, goos string) []string {
	var drivers []string
	if envDriver != "" {
		drivers = append(drivers, envDriver)
	}

	switch goos {
	case "darwin":
		drivers = append(drivers, "cocoa")
	case "windows":
		drivers = append(drivers, "windows")
	default:
		drivers = append(drivers, "wayland", "x11", "kmsdrm")
	}
	return append(drivers, "")
}

// initializeSDL2 initializes the SDL2 video subsystem, falling back through
// the platform's video drivers.
func initializeSDL2() error {
	envDriver := os.Getenv("SDL_VIDEODRIVER")
	if envDriver != "" {
		log.Printf("initializeSDL2: using environment SDL_VIDEODRIVER: %s", envDriver)
	}

	var lastErr error
	for _, driver := range videoDrivers(envDriver, runtime.GOOS) {
		if err := trySDLInitialization(driver); err != nil {
			log.Debugf("initializeSDL2: %q driver failed: %v", driver, err)
			lastErr = err
			continue
		}
		return nil
	}
	return fmt.Errorf("all SDL2 video drivers failed: %v", lastErr)
}

func trySDLInitialization(driver string) error {
	// Clean up a previous failed attempt
	sdl.Quit()

	// The environment variable outranks hints, so it is what gets switched.
	if driver != "" {
		os.Setenv("SDL_VIDEODRIVER", driver)
	} else {
		os.Unsetenv("SDL_VIDEODRIVER")
	}
	// Frames are stretched to the window; linear filtering keeps that smooth.
	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "1")
	sdl.SetHint(sdl.HINT_VIDEO_MINIMIZE_ON_FOCUS_LOSS, "0")

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("SDL_INIT_VIDEO failed: %v", err)
	}

	driverName, err := sdl.GetCurrentVideoDriver()
	if err != nil {
		return fmt.Errorf("failed to get video driver: %v", err)
	}
	log.Printf("initializeSDL2: video driver %s", driverName)
	return nil
}

// logDisplayInfo outputs debugging information about the attached displays
func logDisplayInfo() {
	numDisplays, err := sdl.GetNumVideoDisplays()
	if err != nil {
		log.Debugf("logDisplayInfo: failed to get number of displays: %v", err)
		return
	}
	for i := 0; i < numDisplays; i++ {
		mode, err := sdl.GetCurrentDisplayMode(i)
		if err != nil {
			log.Debugf("logDisplayInfo: display %d: %v", i, err)
			continue
		}
		name, _ := sdl.GetDisplayName(i)
		log.Debugf("logDisplayInfo: display %d %q: %dx%d @ %dHz", i, name, mode.W, mode.H, mode.RefreshRate)
	}
}

// createWindow opens a centered window at the windowed size
func createWindow(title string, size playback.Size) (*sdl.Window, error) {
	window, err := sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		size.W,
		size.H,
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %v", err)
	}
	log.Printf("createWindow: %q %dx%d", title, size.W, size.H)
	return window, nil
}

// createRenderer prefers a hardware renderer and falls back to software
func createRenderer(window *sdl.Window) (*sdl.Renderer, error) {
	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		log.Warnf("createRenderer: hardware acceleration failed, trying software: %v", err)
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			return nil, fmt.Errorf("failed to create renderer: %v", err)
		}
	}

	// Alpha blending for the overlay
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	return renderer, nil
}
