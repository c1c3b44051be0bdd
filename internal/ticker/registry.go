package ticker

import (
	"fmt"
	"sync"
)

// ElementName is the fixed name the component registers under.
const ElementName = "logo-ticker"

var (
	registryMu sync.Mutex
	registry   = make(map[string]func(Options) Model)
)

// Register adds the component constructor to the process-wide registry.
// Application startup calls this exactly once; a duplicate registration is
// reported rather than silently overwriting.
func Register() error {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, ok := registry[ElementName]; ok {
		return fmt.Errorf("component %q already registered", ElementName)
	}
	registry[ElementName] = New
	return nil
}

// Lookup returns the registered constructor for a component name.
func Lookup(name string) (func(Options) Model, bool) {
	registryMu.Lock()
	defer registryMu.Unlock()

	fn, ok := registry[name]
	return fn, ok
}
