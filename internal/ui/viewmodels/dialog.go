package viewmodels

import (
	"countdown/internal/ui/state"
	"countdown/internal/ui/views"
)

// DialogFor picks the dialog to draw. Delete wins over edit, edit over add.
func DialogFor(d state.Dialogs) views.Dialog {
	switch {
	case d.Delete:
		return views.DialogDelete
	case d.Edit:
		return views.DialogEdit
	case d.Add:
		return views.DialogAdd
	default:
		return views.DialogNone
	}
}
