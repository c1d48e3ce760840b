package app

import "github.com/gekko3d/gridworld"

// Log is the logger resource shared by the systems.
type Log struct {
	gridworld.Logger
}

type LoggingModule struct {
	Logger gridworld.Logger
}

func (mod LoggingModule) Install(app *App, cmd *Commands) {
	logger := mod.Logger
	if logger == nil {
		logger = gridworld.NewNopLogger()
	}
	cmd.AddResources(&Log{Logger: logger})
}

// logger returns the Log resource, or a no-op logger when none is installed.
func logger(app *App) gridworld.Logger {
	if l := Resource[Log](app); l != nil {
		return l.Logger
	}
	return gridworld.NewNopLogger()
}
