// Package slider implements the state and drag behaviour of a dual-handle
// range slider.
//
// Range owns the numbers and clamps every change. Controller samples the
// pointer on a fixed cadence while a gesture is active and moves the
// selection towards it with a speed proportional to the pointer's offset
// from where the gesture started, so a handle keeps crawling towards a
// stationary pointer until it catches up or hits a limit. Widget wraps
// both behind the property and notification surface a host binds to.
//
// Rendering and input delivery belong to the host, which supplies the
// Region, Track, Capturer, Renderer and Scheduler implementations.
package slider
