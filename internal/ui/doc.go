// Package ui provides the Bubble Tea host application for the ticker
// component.
//
// The host owns exactly one mounted ticker widget and plays the part of the
// surrounding environment: it seeds the initial attribute set, forwards
// attribute changes coming from key bindings and from the background data
// poller (drained from the state.Store each poll tick), and relays frame
// messages so the component animates. The component itself never reaches
// outside its own state; everything it learns arrives through SetAttribute.
//
// Besides the ticker view the chrome offers a diagnostics view (the
// component's developer channel, fed by internal/diag), a help overlay
// documenting the key bindings and the attribute contract, and cyclable
// themes persisted via internal/prefs.
package ui
