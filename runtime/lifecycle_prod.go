//go:build !dev

package runtime

// callOnInit invokes the OnInit lifecycle method in production mode.
// In production mode, panics are recovered and logged to prevent the host from crashing.
func (e *Engine) callOnInit(initializer Initializer, key string) {
	defer e.recoverLifecycle("OnInit", key)
	initializer.OnInit()
}

// callOnPropertiesSet invokes the OnPropertiesSet lifecycle method in production mode.
func (e *Engine) callOnPropertiesSet(receiver ParameterReceiver, key string) {
	defer e.recoverLifecycle("OnPropertiesSet", key)
	receiver.OnPropertiesSet()
}

// callOnDestroy invokes the OnDestroy lifecycle method in production mode.
func (e *Engine) callOnDestroy(cleaner Cleaner, key string) {
	defer e.recoverLifecycle("OnDestroy", key)
	cleaner.OnDestroy()
}

func (e *Engine) recoverLifecycle(hook, key string) {
	if rec := recover(); rec != nil {
		e.logger.Error("lifecycle panic", "hook", hook, "key", key, "panic", rec)
	}
}
