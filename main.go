package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/image-converter/internal/config"
	"github.com/ytget/image-converter/internal/convert"
	"github.com/ytget/image-converter/internal/logger"
	"github.com/ytget/image-converter/internal/platform"
	"github.com/ytget/image-converter/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.image-converter"
	AppName = "Image Converter"

	WindowWidth  = 640
	WindowHeight = 560
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}
	// .env may have set LOG_LEVEL/LOG_FORMAT after the logger initialized
	logger.Configure(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))

	logger.WithField("version", version).Info("Image Converter starting")

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp, cfg)
	outputDir := settings.GetOutputDirectory()
	if err := platform.CreateDirectoryIfNotExists(outputDir); err != nil {
		logger.WithError(err).WithField("dir", outputDir).Warn("Failed to ensure output directory")
	}

	converter := ui.NewSettingsConverter(settings,
		convert.WithUserAgent("image-converter/"+version),
	)

	ui.NewRootUI(myWindow, settings, converter)

	myWindow.ShowAndRun()
}
