// Package app is the composition root for kiosk.
//
// Run loads configuration (config file, KIOSK_* environment, then the
// caller's overrides), points the standard logger at the log file, builds
// the catalog client, router and counter store, and hands them to the UI.
// It blocks until the UI exits.
//
// Fatal errors are limited to startup: an unreadable config, a bad base URL
// or start path, or a log file that cannot be opened. Fetch failures after
// startup are shown in the view that issued them and never end the program.
//
// # Usage Example
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//
//	if err := app.Run(ctx, app.Options{StartPath: "/product/3"}); err != nil {
//		log.Fatalf("kiosk failed: %v", err)
//	}
package app
