package app

import (
	"errors"
	"fmt"
)

// Module installs resources and systems into an app being built.
type Module interface {
	Install(app *App, cmd *Commands)
}

type AppBuilder struct {
	app     *App
	modules []Module
}

// NewAppBuilder starts an app that already holds an empty Input resource.
func NewAppBuilder() *AppBuilder {
	app := newApp()
	app.addResources(&Input{})
	return &AppBuilder{app: app}
}

func (b *AppBuilder) UseModule(modules ...Module) *AppBuilder {
	b.modules = append(b.modules, modules...)

	return b
}

// Build installs the modules in order. If one reports a failure the
// shutdown hooks registered so far run and the error is returned.
func (b *AppBuilder) Build() (*App, error) {
	app := b.app
	commands := &Commands{app: app}

	for _, module := range b.modules {
		module.Install(app, commands)
		if len(commands.errs) > 0 {
			app.Shutdown()
			return nil, fmt.Errorf("failed to install %T: %w", module, errors.Join(commands.errs...))
		}
	}

	return app, nil
}
