package tui

type modalKind int

const (
	modalNone modalKind = iota
	modalForm
	modalConfirmDelete
)

type confirmModalFocus int

const (
	confirmFocusConfirm confirmModalFocus = iota
	confirmFocusCancel
)

// statusClearMsg expires the transient status line. The seq guards against
// an old timer clearing a newer message.
type statusClearMsg struct{ seq int }
