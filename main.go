package main

import (
	"flag"
	"os"
	"runtime"
	"time"

	"submarine/config"
	"submarine/core"
	"submarine/logging"
	"submarine/rendering/opengl"
)

func init() {
	// GLFW and the GL context must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	configDir := flag.String("config", ".", "Directory containing settings.json")
	flag.Parse()

	settings, err := config.Load(*configDir)
	if err != nil {
		logging.New("info", os.Stderr).Fatal().Err(err).Msg("failed to load settings")
	}

	log := logging.New(settings.LogLevel, os.Stderr)
	log.Info().
		Int("width", settings.Window.Width).
		Int("height", settings.Window.Height).
		Int("meshSize", settings.Scene.MeshSize).
		Str("timestep", settings.Animation.Timestep).
		Msg("starting submarine scene")

	stepper, err := core.NewStepper(settings.Animation.Timestep, settings.Animation.TickInterval())
	if err != nil {
		log.Fatal().Err(err).Msg("invalid animation settings")
	}

	state := core.NewState()

	renderer, err := opengl.NewSceneRenderer(settings, state, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create renderer")
	}
	defer renderer.Terminate()

	timer := core.NewTimer(settings.Animation.TickInterval(), time.Now())
	renderer.Run(timer, stepper)

	log.Info().Msg("window closed, shutting down")
}
