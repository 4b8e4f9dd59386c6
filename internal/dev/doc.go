// Package dev provides the development server and live reload functionality.
//
// This package implements:
//   - File watching for Go, CSS, and asset changes
//   - Re-publishing the site by running the site program
//   - WebSocket-based browser refresh
//   - Error overlay in browser
//
// # Architecture
//
// The development server consists of several components:
//
//   - Watcher: Monitors the project for changes
//   - SiteBuilder: Reruns the site program to regenerate the output dir
//   - Server: Serves the output directory with the reload client injected
//   - ReloadServer: Notifies browsers of changes via WebSocket
//
// # Usage
//
//	srv := dev.NewServer(dev.ServerOptions{
//	    Config: cfg,
//	    Logger: logger,
//	})
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//
//	if err := srv.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Reload Protocol
//
// The browser connects to /_veneer/reload via WebSocket.
// Messages are JSON-encoded:
//
//	{"type": "reload"}                // Triggers full page reload
//	{"type": "css", "file": "..."}    // Triggers CSS-only reload
//	{"type": "error", "error": "..."} // Shows error overlay
//	{"type": "clear"}                 // Clears error overlay
package dev
