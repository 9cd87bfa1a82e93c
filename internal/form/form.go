// Package form keeps transient draft/edit state separate from the domain
// stores. A Form is what a modal dialog holds before the caller commits it
// through a service operation.
package form

// Form tracks a draft of type D plus the id of the record being edited, if
// any. The zero value is an empty add-mode form.
type Form[D any] struct {
	draft     D
	editingID string
}

// SetDraft replaces the working draft.
func (f *Form[D]) SetDraft(draft D) {
	f.draft = draft
}

// Draft returns the current working draft.
func (f *Form[D]) Draft() D {
	return f.draft
}

// BeginEdit copies the target record's fields into the draft and remembers
// which id the subsequent update applies to.
func (f *Form[D]) BeginEdit(id string, draft D) {
	f.editingID = id
	f.draft = draft
}

// EditingID returns the remembered target id, or "" in add mode.
func (f *Form[D]) EditingID() string {
	return f.editingID
}

// Editing reports whether the form is in edit mode.
func (f *Form[D]) Editing() bool {
	return f.editingID != ""
}

// Reset clears the draft and leaves add mode, as on cancel or after a
// successful commit.
func (f *Form[D]) Reset() {
	var zero D
	f.draft = zero
	f.editingID = ""
}
