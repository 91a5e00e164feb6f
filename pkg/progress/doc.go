// Package progress renders live-updating progress bars in a terminal.
//
// A Progress session owns a block of one or more lines below an optional
// static title. Each update merges new values into the tracked lines,
// renders each changed line from its template, and redraws the block in
// place using cursor-movement escape sequences:
//
//	p := progress.New(progress.Options{Title: []string{"downloading"}})
//	for i := 0; i <= 100; i++ {
//		p.Update(float64(i), progress.WithLabel("file.tar"))
//	}
//
// Multiple stacked bars are driven with UpdateMany; a nil entry leaves its
// line untouched:
//
//	p.UpdateMany(progress.Set(10, progress.WithLabel("a")), nil)
//
// Rendering is synchronous and happens only inside Update, Log and
// Complete. Redraws closer together than Options.MinUpdateInterval are
// skipped; ForceUpdate and Flush bypass the throttle.
package progress
