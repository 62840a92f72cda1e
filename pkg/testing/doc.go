// Package testing drives widgets and programs without a window.
//
// # Quick Start
//
// Create a tester, pump a widget, and make assertions:
//
//	func TestVolume(t *testing.T) {
//	    tester := gallerytest.NewWidgetTester()
//	    tester.PumpWidget(widgets.NewNumberInput("volume", 5, numeric.Inclusive(0, 10)))
//	    tester.Engine().Focus("volume")
//
//	    tester.PressKey(input.KeyArrowUp)
//
//	    msgs := tester.TakeMessages()
//	    // msgs[0] is widgets.NumberChanged[int]{Source: "volume", Value: 6}
//	}
//
// PumpProgram runs a whole engine.Program instead: published messages are
// fed to Update and the view is rebuilt, exactly as the desktop shell does.
//
// # Finders
//
// Finders match nodes of the inspected view by widget type, key, or label:
//
//	tester.Find(gallerytest.ByType[*widgets.NumberInput[int]]())
//	tester.Find(gallerytest.ByKey("volume"))
//	tester.Find(gallerytest.ByText("Increment"))
//
// # Snapshot Testing
//
// Capture and compare the laid out tree and its drawing operations:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/volume.snapshot.json")
//
// Update snapshots with:
//
//	GALLERY_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import gallerytest "github.com/go-drift/fluent-gallery/pkg/testing"
package testing
