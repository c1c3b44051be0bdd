// Package ticker implements the logo ticker widget: an infinitely scrolling
// horizontal strip of logo chips inside a gradient-bordered container.
//
// The widget is attribute-driven. Hosts apply configuration through
// SetAttribute with the keys listed by ObservedAttributes; every processed
// change rebuilds the derived visual state wholesale, and setting a key to
// its current raw value is a no-op. Invalid input never fails the widget:
// malformed logo data falls back to the built-in set with a diagnostic,
// malformed speeds fall back to the 90 second default, and unparsable accent
// colors degrade to unstyled rendering.
//
// The row renders the logo list three times in sequence. A translation of
// one third of the row width per loop therefore wraps with no visible seam,
// and a transparency ramp over the outer ~8% of the viewport fades chips in
// and out at the edges. Animation follows the bubbletea frame-message idiom:
// Tick schedules FrameMsg deliveries and Update advances the loop clock.
// Under reduced motion no frames are scheduled and the mask is disabled,
// leaving a plain static row.
package ticker
