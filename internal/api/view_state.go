package api

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type viewMode int

const (
	viewIdle viewMode = iota
	viewEditing
	viewConfirmingDelete
)

// viewState is the explicit per-page editing state for the list pages:
// idle, editing one row, or waiting for a delete confirmation. It lives in
// the query string, so a reload or a shared link lands in the same state.
type viewState struct {
	Mode  viewMode
	RowID uint
}

func parseViewState(c *fiber.Ctx) viewState {
	if id, ok := parseRowID(c.Query("edit")); ok {
		return viewState{Mode: viewEditing, RowID: id}
	}
	if id, ok := parseRowID(c.Query("confirm_delete")); ok {
		return viewState{Mode: viewConfirmingDelete, RowID: id}
	}
	return viewState{Mode: viewIdle}
}

func parseRowID(raw string) (uint, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}
	parsed, err := strconv.ParseUint(trimmed, 10, 32)
	if err != nil || parsed == 0 {
		return 0, false
	}
	return uint(parsed), true
}

func (state viewState) IsEditing(rowID uint) bool {
	return state.Mode == viewEditing && state.RowID == rowID
}

func (state viewState) IsConfirmingDelete(rowID uint) bool {
	return state.Mode == viewConfirmingDelete && state.RowID == rowID
}
