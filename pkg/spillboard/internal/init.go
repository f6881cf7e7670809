// Package internal contains the core infrastructure for the spillboard widget.
// This includes SDL initialization, input processing, theming, and rendering utilities.
// Types and functions in this package are not part of the public API.
package internal
