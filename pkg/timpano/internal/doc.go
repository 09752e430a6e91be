// Package internal contains the host infrastructure for the timpano
// navigation framework. This includes SDL initialization, the window and
// renderer, logging, theming, chrome rendering, and hardware input watching.
// Types and functions in this package are not part of the public API.
package internal
