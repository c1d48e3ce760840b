package app

// Commands is the handle modules use while the app is being built.
type Commands struct {
	app  *App
	errs []error
}

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.app.addResources(resources...)
	return cmd
}

func (cmd *Commands) UseSystem(system systemScheduleBuilder) *Commands {
	cmd.app.UseSystem(system)
	return cmd
}

func (cmd *Commands) OnShutdown(fn func()) *Commands {
	cmd.app.OnShutdown(fn)
	return cmd
}

// Fail aborts Build after the current module returns.
func (cmd *Commands) Fail(err error) {
	cmd.errs = append(cmd.errs, err)
}
