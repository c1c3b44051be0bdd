// Package app wires the logoticker application together: configuration,
// preferences, logging, component registration, the logo data file poller,
// and the Bubble Tea UI.
//
// The split mirrors the component contract. The ticker widget owns nothing
// but its configuration snapshot; this package plays the hosting
// environment, seeding the initial attributes from config and pushing
// later changes (a rewritten logo data file) through the state.Store that
// the UI drains into the component.
package app
