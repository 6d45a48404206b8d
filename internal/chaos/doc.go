// Package chaos generates Lorenz attractor trajectories.
//
// The integrator is deliberately plain explicit Euler with a fixed step:
// the point sequences feed path rendering, where smoothness of the visual
// matters more than integration order. Generation is deterministic and
// never fails; unstable parameter choices produce diverging trajectories,
// which is the phenomenon being visualized.
package chaos
