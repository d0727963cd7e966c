// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Seed prompt, share links, BLAKE3 fingerprints, --frames stream
// 0.2.0 - Keplerian propagation with inclined, eccentric orbits and periapsis events
// 0.1.0 - Initial release: seeded system generator, orrery view, headless summary and map
