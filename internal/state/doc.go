// Package state carries host attribute writes between goroutines.
//
// The ticker component itself is single-threaded: it only ever runs inside
// the UI loop. Host sources that produce attribute changes off that loop,
// like the logo data file poller, push into a Store; the UI drains the
// queue on its poll tick and replays the changes into the component
// sequentially, preserving arrival order.
package state
