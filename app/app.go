package app

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
)

type systemFn any

// App owns the resources and runs every system once per frame, stage by stage.
type App struct {
	stages    []Stage
	systems   map[string][]systemFn
	resources map[reflect.Type]any
	shutdown  []func()
	frame     uint64
}

func newApp() *App {
	app := &App{
		systems:   make(map[string][]systemFn),
		resources: make(map[reflect.Type]any),
	}
	for _, stage := range defaultStages {
		app.initStage(stage)
	}
	return app
}

// Run steps frames until Input.Quit is set or a system fails. Shutdown hooks
// run before it returns.
func (app *App) Run() error {
	defer app.Shutdown()

	input := Resource[Input](app)
	for {
		if err := app.Step(); err != nil {
			return err
		}
		if input != nil && input.Quit {
			return nil
		}
	}
}

// Step runs every stage once.
func (app *App) Step() error {
	for _, stage := range app.stages {
		for _, system := range app.systems[stage.Name] {
			if err := app.callSystem(system); err != nil {
				return fmt.Errorf("frame %d, stage %s: %w", app.frame, stage.Name, err)
			}
		}
	}
	app.frame++
	return nil
}

// Frame is the number of completed steps.
func (app *App) Frame() uint64 {
	return app.frame
}

// OnShutdown registers fn to run when the app stops. Hooks run in reverse
// order of registration.
func (app *App) OnShutdown(fn func()) {
	app.shutdown = append(app.shutdown, fn)
}

func (app *App) Shutdown() {
	for i := len(app.shutdown) - 1; i >= 0; i-- {
		app.shutdown[i]()
	}
	app.shutdown = nil
}

func (app *App) addResources(resources ...any) *App {
	for _, resource := range resources {
		resourceType := reflect.TypeOf(resource)
		if resourceType.Kind() != reflect.Pointer {
			panic(fmt.Sprintf("resource %s must be a pointer", resourceType))
		}
		if _, ok := app.resources[resourceType.Elem()]; ok {
			panic(fmt.Sprintf("%s is already in resources", resourceType))
		}

		app.resources[resourceType.Elem()] = resource
	}
	return app
}

// Resource returns the *T resource, or nil if none was added.
func Resource[T any](app *App) *T {
	res, ok := app.resources[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		return nil
	}
	return res.(*T)
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

type UnresolvedDependencyError struct {
	System     string
	Dependency reflect.Type
}

func (e *UnresolvedDependencyError) Error() string {
	return fmt.Sprintf("unable to resolve system dependency %s of %s", e.Dependency, e.System)
}

func systemName(system systemFn) string {
	return runtime.FuncForPC(reflect.ValueOf(system).Pointer()).Name()
}

// callSystem resolves each pointer parameter from resources. A system may
// return nothing or a single error.
func (app *App) callSystem(system systemFn) error {
	systemType := reflect.TypeOf(system)
	systemValue := reflect.ValueOf(system)

	args := make([]reflect.Value, systemType.NumIn())
	for i := 0; i < systemType.NumIn(); i++ {
		argType := systemType.In(i)
		if argType.Kind() != reflect.Pointer {
			return &UnresolvedDependencyError{System: systemName(system), Dependency: argType}
		}
		resource, ok := app.resources[argType.Elem()]
		if !ok {
			return &UnresolvedDependencyError{System: systemName(system), Dependency: argType}
		}
		args[i] = reflect.ValueOf(resource)
	}

	out := systemValue.Call(args)
	if len(out) == 1 && !out[0].IsNil() {
		return out[0].Interface().(error)
	}
	return nil
}

func validateSystem(system systemFn) error {
	systemType := reflect.TypeOf(system)
	if systemType == nil || systemType.Kind() != reflect.Func {
		return fmt.Errorf("system %T is not a function", system)
	}
	switch systemType.NumOut() {
	case 0:
		return nil
	case 1:
		if systemType.Out(0) == errorType {
			return nil
		}
	}
	return errors.New("system " + systemName(system) + " may only return error")
}
