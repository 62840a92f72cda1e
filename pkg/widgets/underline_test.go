package widgets_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/fluent-gallery/pkg/graphics"
	"github.com/go-drift/fluent-gallery/pkg/numeric"
	gallerytest "github.com/go-drift/fluent-gallery/pkg/testing"
	"github.com/go-drift/fluent-gallery/pkg/theme"
	"github.com/go-drift/fluent-gallery/pkg/widgets"
)

func lastRect(t *testing.T, tester *gallerytest.WidgetTester) gallerytest.DisplayOp {
	t.Helper()
	rects := gallerytest.FilterOps(gallerytest.SerializeDisplayList(tester.Paint()), "drawRect")
	require.NotEmpty(t, rects)
	return rects[len(rects)-1]
}

func colorString(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

func TestUnderline_ThickensWhileFocused(t *testing.T) {
	underline := theme.DefaultLightTheme().UnderlineThemeOf()
	tester := gallerytest.NewWidgetTester()
	tester.PumpWidget(widgets.UnderlinedNumberInput(widgets.NewNumberInput(inputID, 1, numeric.Inclusive(0, 9))))
	bounds := tester.Find(gallerytest.ByType[widgets.Underline]()).Bounds()

	idle := lastRect(t, tester)
	assert.Equal(t, colorString(underline.Color), idle.Params["color"])
	assert.Equal(t, bounds.Bottom-underline.Width, idle.Params["rect"].(map[string]any)["top"])

	tester.Engine().Focus(inputID)
	focused := lastRect(t, tester)
	assert.Equal(t, colorString(underline.FocusedColor), focused.Params["color"])
	assert.Equal(t, bounds.Bottom-underline.FocusedWidth, focused.Params["rect"].(map[string]any)["top"])
}

func TestUnderline_ForwardsEvents(t *testing.T) {
	tester := gallerytest.NewWidgetTester()
	tester.PumpWidget(widgets.UnderlinedNumberInput(widgets.NewNumberInput(inputID, 1, numeric.Inclusive(0, 9))))

	tester.TapAt(increaseButton(tester))
	assert.Equal(t, []int{2}, changes(tester))
}
