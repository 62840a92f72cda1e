package widgets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/fluent-gallery/pkg/graphics"
	"github.com/go-drift/fluent-gallery/pkg/input"
	gallerytest "github.com/go-drift/fluent-gallery/pkg/testing"
	"github.com/go-drift/fluent-gallery/pkg/widgets"
)

var sizes = []string{"Small", "Medium", "Large"}

func pickListBounds(tester *gallerytest.WidgetTester) graphics.Rect {
	return tester.Find(gallerytest.ByType[widgets.PickList[string]]()).Bounds()
}

func TestPickList_OpensAndSelects(t *testing.T) {
	tester := gallerytest.NewWidgetTester()
	tester.PumpWidget(widgets.StandardPickList("size", sizes, nil).WithPlaceholder("Choose"))

	closed := pickListBounds(tester)
	require.Equal(t, 30.0, closed.Height())

	assert.Equal(t, input.Captured, tester.TapAt(closed.Center()))
	open := pickListBounds(tester)
	assert.Equal(t, 120.0, open.Height(), "header plus three rows")

	// Second row: below the 30px header, one 30px row down.
	assert.Equal(t, input.Captured, tester.TapAt(graphics.Offset{X: 10, Y: 75}))
	assert.Equal(t, []any{widgets.PickListSelected[string]{Source: "size", Value: "Medium"}}, tester.TakeMessages())
	assert.Equal(t, closed, pickListBounds(tester))
}

func TestPickList_ClosesWithoutSelecting(t *testing.T) {
	tester := gallerytest.NewWidgetTester()
	tester.PumpWidget(widgets.StandardPickList("size", sizes, nil))
	header := pickListBounds(tester)

	tester.TapAt(header.Center())
	assert.Equal(t, input.Captured, tester.PressKey(input.KeyEscape))
	assert.Equal(t, header, pickListBounds(tester))

	tester.TapAt(header.Center())
	tester.TapAt(graphics.Offset{X: 700, Y: 500})
	assert.Equal(t, header, pickListBounds(tester))
	assert.Empty(t, tester.TakeMessages())
}

func TestPickList_ShowsSelection(t *testing.T) {
	selected := "Large"
	tester := gallerytest.NewWidgetTester()
	tester.PumpWidget(widgets.StandardPickList("size", sizes, &selected).WithPlaceholder("Choose"))

	var texts []string
	for _, op := range gallerytest.FilterOps(gallerytest.SerializeDisplayList(tester.Paint()), "drawText") {
		texts = append(texts, op.Params["text"].(string))
	}
	assert.Contains(t, texts, "Large")
	assert.NotContains(t, texts, "Choose")
}

func TestPickList_CustomLabel(t *testing.T) {
	tester := gallerytest.NewWidgetTester()
	tester.PumpWidget(widgets.StandardPickList("n", []int{1, 2}, nil).
		WithLabel(func(v int) string { return map[int]string{1: "one", 2: "two"}[v] }))

	tester.TapAt(tester.Find(gallerytest.ByType[widgets.PickList[int]]()).Bounds().Center())
	var texts []string
	for _, op := range gallerytest.FilterOps(gallerytest.SerializeDisplayList(tester.Paint()), "drawText") {
		texts = append(texts, op.Params["text"].(string))
	}
	assert.Contains(t, texts, "one")
	assert.Contains(t, texts, "two")
}
