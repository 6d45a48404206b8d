// Package scene composes the animation scenes: each scene declares its
// geometry (trajectories, curves, markers) and, for animated scenes, a pure
// Advance function that maps one frame state to the next. Frame state is
// explicit and owned by the caller; nothing is captured in closures, so the
// render loop can pause, reset, or replay freely.
package scene
