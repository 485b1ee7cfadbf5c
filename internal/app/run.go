package app

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"yashubustudio/sentencematcher/matcher"
)

const fyneAppID = "studio.yashubu.sentencematcher"

// Options controls how the desktop UI is started.
type Options struct {
	EnvFile string
	Verbose bool
}

// Run loads the configuration and the dataset and starts the desktop UI.
// It returns when the window is closed.
func Run(opts Options) error {
	a := fyneapp.NewWithID(fyneAppID)

	logBind := binding.NewString()
	logger := matcher.NewLogger(opts.Verbose, os.Stdout, newLogCapture(logBind, logLimit))
	defer func() { _ = logger.Sync() }()

	cfg, err := matcher.LoadConfig(opts.EnvFile)
	if err != nil {
		err = fmt.Errorf("load configuration: %w", err)
		showFatalError(a, err)
		return err
	}
	svc, err := matcher.NewService(cfg, logger)
	if err != nil {
		showFatalError(a, err)
		return err
	}

	u := buildUI(a, svc.Session(), logBind, a.Quit)
	svc.Session().Start()
	u.w.ShowAndRun()
	return nil
}

func showFatalError(a fyne.App, err error) {
	win := a.NewWindow(windowTitle)
	win.SetContent(widget.NewLabel(err.Error()))
	win.Resize(fyne.NewSize(480, 160))
	dialog.ShowError(err, win)
	win.ShowAndRun()
}
