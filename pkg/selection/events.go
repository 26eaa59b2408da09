package selection

import "fmt"

// ChangeKind enumerates the mutations a Manager announces.
type ChangeKind string

const (
	// ChangeReconcile follows a new catalog.
	ChangeReconcile ChangeKind = "reconcile"
	// ChangeToggle follows a single option toggle.
	ChangeToggle ChangeKind = "toggle"
	// ChangeBulk follows SelectAll or Clear.
	ChangeBulk ChangeKind = "bulk"
	// ChangeFilter follows a filter text update.
	ChangeFilter ChangeKind = "filter"
)

// Change is emitted on Manager.Changes after state changes.
type Change struct {
	Kind     ChangeKind
	ID       string
	Selected bool
	Filter   string
}

// Describe renders the change for logs.
func (c Change) Describe() string {
	switch c.Kind {
	case ChangeToggle:
		return fmt.Sprintf(`kind:%q id:%q selected:%t`, c.Kind, c.ID, c.Selected)
	case ChangeFilter:
		return fmt.Sprintf(`kind:%q filter:%q`, c.Kind, c.Filter)
	default:
		return fmt.Sprintf(`kind:%q`, c.Kind)
	}
}
