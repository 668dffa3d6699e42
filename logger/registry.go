package logger

import "sync"

// Components the CLI registers after Init, so a solve run reuses one tagged
// logger per component instead of deriving a new one on every Get.
const (
	ComponentCLI    = "cli"
	ComponentSolver = "solver"
)

var components = struct {
	mu     sync.RWMutex
	byName map[string]*Logger
}{byName: make(map[string]*Logger)}

// reset drops every registered component. Init calls it because registered
// loggers still point at the previous writer.
func reset() {
	components.mu.Lock()
	components.byName = make(map[string]*Logger)
	components.mu.Unlock()
}

// Register makes l the logger returned by Get(name).
func Register(name string, l *Logger) {
	components.mu.Lock()
	components.byName[name] = l
	components.mu.Unlock()
}

// Get returns the logger registered for component name, or the global
// logger tagged with name.
func Get(name string) *Logger {
	components.mu.RLock()
	l, ok := components.byName[name]
	components.mu.RUnlock()
	if ok {
		return l
	}
	return GetGlobalLogger().WithComponent(name)
}

// RegisterDefaults registers a component logger for each name, derived from
// the current global logger.
func RegisterDefaults(names ...string) {
	global := GetGlobalLogger()
	for _, name := range names {
		Register(name, global.WithComponent(name))
	}
}
