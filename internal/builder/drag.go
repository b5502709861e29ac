// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package builder

import (
	"strings"

	"github.com/dacolabs/formcraft/internal/model"
)

// Drop zones.
const (
	ZonePalette = "field-palette"
	ZoneCanvas  = "form-canvas"
)

// PalettePrefix prefixes the draggable id of a palette entry.
const PalettePrefix = "palette-"

// Location is a position inside a drop zone.
type Location struct {
	DroppableID string `json:"droppableId"`
	Index       int    `json:"index"`
}

// DragResult describes a finished drag gesture. A nil Destination means the
// gesture was cancelled.
type DragResult struct {
	Source      Location  `json:"source"`
	Destination *Location `json:"destination"`
	DraggableID string    `json:"draggableId"`
}

// PaletteDraggableID returns the draggable id of the palette entry for typ.
func PaletteDraggableID(typ model.FieldType) string {
	return PalettePrefix + string(typ)
}

// Drop applies a drag gesture. Palette to canvas appends a field of the
// dragged type to the current step; the drop index is ignored. Canvas to
// canvas reorders within the current step. Anything else does nothing.
func (s *Session) Drop(r DragResult) error {
	if r.Destination == nil {
		return nil
	}
	switch {
	case r.Source.DroppableID == ZonePalette && r.Destination.DroppableID == ZoneCanvas:
		typ := model.FieldType(strings.TrimPrefix(r.DraggableID, PalettePrefix))
		_, err := s.AddField(typ)
		return err
	case r.Source.DroppableID == ZoneCanvas && r.Destination.DroppableID == ZoneCanvas:
		return s.ReorderField(r.Source.Index, r.Destination.Index)
	}
	return nil
}
