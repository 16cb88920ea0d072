package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xqrs/tview-reorder"
	"github.com/xqrs/tview-reorder/help"
	"github.com/xqrs/tview-reorder/logging"
	"github.com/xqrs/tview-reorder/reorder"
)

func newTestTracker(t *testing.T) (*tracker, *string) {
	t.Helper()
	cfg := DefaultConfig()
	list := tview.NewSectionList()
	list.SetSections(cfg.ListSections())

	var status string
	return &tracker{
		list:   list,
		locked: cfg.Locked(),
		logger: logging.NewNop(),
		status: func(s string) { status = s },
	}, &status
}

func TestTracker_Start(t *testing.T) {
	tr, status := newTestTracker(t)

	assert.True(t, tr.StartReorderingRow(reorder.RowIndex{Section: 0, Row: 1}))
	assert.Equal(t, `lifted "Write release notes"`, *status)

	assert.False(t, tr.StartReorderingRow(reorder.RowIndex{Section: 0, Row: 2}))
	assert.Equal(t, `"Standup" is locked`, *status)

	assert.False(t, tr.StartReorderingRow(reorder.RowIndex{Section: -1, Row: 0}))
}

func TestTracker_LockedRowsStayPut(t *testing.T) {
	tr, _ := newTestTracker(t)

	assert.False(t, tr.AllowChangingRow(reorder.RowIndex{Section: 0, Row: 2}))
	assert.True(t, tr.AllowChangingRow(reorder.RowIndex{Section: 0, Row: 3}))
}

func TestTracker_Status(t *testing.T) {
	tr, status := newTestTracker(t)
	first := reorder.RowIndex{Section: 1, Row: 0}
	second := reorder.RowIndex{Section: 1, Row: 1}

	tr.PositionChanged(first, second)
	assert.Equal(t, `"Upgrade tcell" (1,0) → (1,1)`, *status)

	tr.ReorderFinished(first, first)
	assert.Equal(t, `"Upgrade tcell" dropped in place`, *status)

	tr.ReorderFinished(first, second)
	assert.Equal(t, `"Profile redraws" moved (1,0) → (1,1)`, *status)

	tr.GestureEndedOnHeader(first)
	assert.Equal(t, `dropped on the "This week" header`, *status)
}

func TestNewDemo(t *testing.T) {
	root, err := newDemo(tview.NewApplication(), DefaultConfig(), logging.NewNop())
	require.NoError(t, err)

	mainView, ok := root.GetLayer(mainLayer).(*view)
	require.True(t, ok)
	assert.Equal(t, "ready", mainView.status)
	assert.Len(t, mainView.list.Sections(), 3)
	assert.False(t, root.GetVisible(helpLayer))
	assert.NotNil(t, root.GetLayer(helpLayer))
}

func TestNewDemo_InvalidOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Reorder.PopOutScale = "-1"

	_, err := newDemo(tview.NewApplication(), cfg, logging.NewNop())
	require.ErrorIs(t, err, reorder.ErrInvalidOptions)
}

func TestOpenLog(t *testing.T) {
	logger, closeLog, err := openLog("", LogConfig{Level: "debug"})
	require.NoError(t, err)
	closeLog()
	assert.Equal(t, logging.NewNop(), logger)

	path := filepath.Join(t.TempDir(), "demo.log")
	logger, closeLog, err = openLog(path, LogConfig{Level: "info"})
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("drag began", "session", "abc")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "drag began")
	assert.Contains(t, string(data), "session=abc")
	assert.NotContains(t, string(data), "hidden")

	_, _, err = openLog(path, LogConfig{Level: "loud"})
	require.Error(t, err)
}

func TestPopupSize(t *testing.T) {
	cfg := DefaultConfig()
	h := help.New(help.Merge(cfg.Keys.App, cfg.Keys.List)).SetShowAll(true)

	width, height := popupSize(h)

	// Four rows from the list's first column; the third row is the widest at
	// 53 cells. Border and padding add four columns and two lines.
	assert.Equal(t, 6, height)
	assert.Equal(t, 57, width)
}
