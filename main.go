package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"archive-stream/pkg/audio"
	"archive-stream/pkg/config"
	"archive-stream/pkg/console"
	"archive-stream/pkg/mpeg"
	"archive-stream/pkg/performance"
	"archive-stream/pkg/playback"
	"archive-stream/pkg/source"
	"archive-stream/pkg/startsignal"
	"archive-stream/screens/player"
)

func main() {
	// SDL must be driven from the main OS thread.
	runtime.LockOSThread()

	os.Exit(run())
}

// run returns the process exit code. Every fatal path returns 1 after the
// deferred cleanups have run.
func run() int {
	cfg := config.Load(".env")
	cfg.ConfigureLogging()

	console.Clear(os.Stdout)
	console.Banner(os.Stdout)
	input, err := console.ReadURL(os.Stdin, os.Stdout)
	if err != nil {
		log.Errorf("main: %v", err)
		return 1
	}

	resolver := source.NewResolver(func() (*source.Presigner, error) {
		return source.NewPresignerFromEnv(cfg.PresignExpiry)
	})
	uri, err := resolver.Resolve(input)
	if err != nil {
		log.Errorf("main: %v", err)
		return 1
	}
	if cfg.ShowQR {
		if err := console.PrintQR(os.Stdout, uri); err != nil {
			log.Warnf("main: %v", err)
		}
	}

	// Audio first: a missing player must stop us before any window exists.
	started := startsignal.New()
	channel := audio.NewChannel(cfg.AudioPlayer, audio.WithDelay(cfg.AudioDelay))
	task, err := channel.Start(uri, started)
	if err != nil {
		log.Errorf("main: %v", err)
		return 1
	}
	defer releaseAudio(task, cfg.KillAudioOnExit)

	src, err := mpeg.Open(uri, cfg.DefaultFPS)
	if err != nil {
		log.Errorf("main: %v", err)
		return 1
	}

	if err := initializeSDL2(); err != nil {
		log.Errorf("main: failed to initialize SDL2: %v", err)
		src.Close()
		return 1
	}
	defer func() {
		log.Println("Shutting down SDL2...")
		sdl.Quit()
	}()
	logDisplayInfo()

	layout := playback.DefaultConfig()
	layout.DefaultFrameRate = cfg.DefaultFPS
	size := playback.FrameSize(src)

	screen, err := openScreen(cfg, layout, size, src)
	if err != nil {
		log.Errorf("main: %v", err)
		src.Close()
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := playback.NewLoop(layout, src, screen, started,
		playback.WithMonitor(performance.NewMonitor(int(src.FrameRate())*2)),
		playback.WithReportInterval(cfg.PerfLogInterval),
	)
	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Errorf("main: playback: %v", err)
		return 1
	}

	log.Println("Archive Streamer shutting down...")
	return 0
}

// openScreen creates the window, its renderer and the player screen on top.
// On failure everything created so far is destroyed.
func openScreen(cfg config.Config, layout playback.Config, size playback.Size, src *mpeg.Source) (*player.Screen, error) {
	window, err := createWindow(cfg.Title, size)
	if err != nil {
		return nil, err
	}

	renderer, err := createRenderer(window)
	if err != nil {
		window.Destroy()
		return nil, err
	}

	screen, err := player.NewScreen(window, renderer, layout, player.Options{
		FrameWidth:  src.Width(),
		FrameHeight: src.Height(),
		FontPath:    cfg.FontPath,
		FontSize:    cfg.FontSize,
	})
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		return nil, err
	}
	return screen, nil
}

// releaseAudio leaves the player to finish on its own unless killing it on
// exit was asked for.
func releaseAudio(task *audio.Task, kill bool) {
	if !kill {
		task.Detach()
		return
	}
	if err := task.Kill(); err != nil {
		log.Warnf("main: %v", err)
	}
}
