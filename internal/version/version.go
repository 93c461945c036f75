// Package version provides centralized version information for the formdrop
// batch form submitter. Having a single source for the version string keeps
// the CLI --version output, the User-Agent header, and report metadata in
// sync without scattering constants across packages.
// The version follows semantic versioning (semver) conventions.

package version

// FormdropVersion holds the current formdrop CLI version.
// Format: major.minor.patch[-prerelease][+build]
const FormdropVersion = "0.1.0-dev"
