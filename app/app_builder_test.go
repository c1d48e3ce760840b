package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockModule struct {
	installed bool
}

func (m *MockModule) Install(app *App, commands *Commands) {
	m.installed = true
}

type failingModule struct {
	err error
}

func (m failingModule) Install(app *App, commands *Commands) {
	commands.Fail(m.err)
}

type hookModule struct {
	calls *[]string
	name  string
}

func (m hookModule) Install(app *App, commands *Commands) {
	commands.OnShutdown(func() { *m.calls = append(*m.calls, m.name) })
}

func TestAppBuilder_InputResource(t *testing.T) {
	app, err := NewAppBuilder().Build()
	require.NoError(t, err)

	if Resource[Input](app) == nil {
		t.Errorf("Expected an Input resource")
	}
}

func TestAppBuilder_UseModule(t *testing.T) {
	builder := NewAppBuilder()
	mockModule := &MockModule{}
	builder.UseModule(mockModule)

	if len(builder.modules) != 1 {
		t.Errorf("Expected modules to contain 1 module, got %v", len(builder.modules))
	}
}

func TestAppBuilder_Build_WithMultipleModules(t *testing.T) {
	module1 := &MockModule{}
	module2 := &MockModule{}

	builder := NewAppBuilder()
	builder.UseModule(module1)
	builder.UseModule(module2)

	_, err := builder.Build()
	require.NoError(t, err)

	if !module1.installed {
		t.Errorf("Expected Install to be called on the module 1, but it was not")
	}
	if !module2.installed {
		t.Errorf("Expected Install to be called on the module 2, but it was not")
	}
}

func TestAppBuilder_Build_FailureStopsInstall(t *testing.T) {
	var calls []string
	boom := errors.New("no window")
	later := &MockModule{}

	app, err := NewAppBuilder().
		UseModule(hookModule{calls: &calls, name: "first"}, failingModule{err: boom}, later).
		Build()

	assert.Nil(t, app)
	assert.ErrorIs(t, err, boom)
	assert.False(t, later.installed)
	assert.Equal(t, []string{"first"}, calls, "hooks of installed modules run")
}
