//go:build dev

package runtime

// callOnInit invokes the OnInit lifecycle method in development mode.
// In dev mode, panics propagate to aid debugging and fast failure.
func (e *Engine) callOnInit(initializer Initializer, key string) {
	initializer.OnInit()
}

// callOnPropertiesSet invokes the OnPropertiesSet lifecycle method in development mode.
func (e *Engine) callOnPropertiesSet(receiver ParameterReceiver, key string) {
	receiver.OnPropertiesSet()
}

// callOnDestroy invokes the OnDestroy lifecycle method in development mode.
func (e *Engine) callOnDestroy(cleaner Cleaner, key string) {
	cleaner.OnDestroy()
}
