package main

import (
	"github.com/kjkrol/cubic/internal/logging"
	"github.com/kjkrol/cubic/internal/platform"
	"github.com/kjkrol/cubic/internal/renderer"
	"github.com/kjkrol/cubic/internal/settings"
	"github.com/kjkrol/cubic/pkg/gfx"

	log "github.com/sirupsen/logrus"
)

func main() {
	conf, err := settings.Load(settings.DefaultPath)
	if err != nil {
		log.WithError(err).Fatal("Failed to build settings")
	}
	logging.SetLogLevel(conf.LogLevel)
	logger := logging.Session()

	if err := platform.Init(); err != nil {
		logger.WithError(err).Fatal("Failed to initialize windowing")
	}

	window, err := gfx.NewWindow(conf.WindowConfig())
	if err != nil {
		logger.WithError(err).Fatal("Failed to build windowed context")
	}
	ctx, err := window.TakeContext()
	if err != nil {
		logger.WithError(err).Fatal("Failed to take windowed context")
	}

	stopSender, stopReceiver := gfx.NewStopSignal()
	resizeSender, resizeReceiver := gfx.NewResizeSignal()

	loop := gfx.NewRenderLoop(
		stopReceiver,
		resizeReceiver,
		renderer.NewRendererFactory(conf.RendererConfig()),
		logger,
	)
	renderThread := gfx.StartRenderThread(ctx, loop, window.Wake)

	events := gfx.NewEventLoop(window, stopSender, resizeSender, renderThread, logger)
	if err := events.Run(conf.EventStrategy()); err != nil {
		logger.WithError(err).Fatal("Render thread terminated abnormally")
	}

	window.Close()
	platform.Terminate()
	logger.Info("Shut down cleanly")
}
