// Package desktop hosts an engine.Program in a fyne window.
//
// The view is painted into a raster the size of the window with
// graphics.ImageCanvas. Mouse, wheel, keyboard and shortcut callbacks from
// fyne are translated into input events and dispatched through an
// engine.Runtime. Every callback runs on the fyne UI goroutine; work from
// other goroutines goes through Window.Deliver, which schedules it there
// with fyne.Do.
package desktop
