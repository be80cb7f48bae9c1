// Package controller owns the lyrx view state and every transition between screens.
//
// The [Controller] is driven by a single owner (the TUI event loop or a CLI command) and is not safe for
// concurrent use. Searches are split into [Controller.Submit] and [Controller.Resolve] so the network call can
// run elsewhere; each submit carries a generation number and a response whose generation no longer matches the
// pending search is dropped.
//
// Side effects (clipboard, file downloads, persistence) are injected through small interfaces. Their failures
// are logged and never change the view state.
package controller
