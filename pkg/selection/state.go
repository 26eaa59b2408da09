package selection

// Status carries the catalog supplier's flags.
type Status struct {
	Loading bool `json:"loading"`
	Errored bool `json:"errored"`
}

// State is what the presentation layer should render.
type State int

const (
	// StateReady renders the two views.
	StateReady State = iota
	// StateEmpty means the catalog produced no options.
	StateEmpty
	// StateLoading means the catalog is still being fetched.
	StateLoading
	// StateErrored means the catalog could not be fetched.
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLoading:
		return "loading"
	case StateErrored:
		return "errored"
	default:
		return "ready"
	}
}

// Message is the text shown in place of the option list, if any.
func (s State) Message() string {
	switch s {
	case StateEmpty:
		return "No options available."
	case StateLoading:
		return "Loading..."
	case StateErrored:
		return "Failed to get options."
	default:
		return ""
	}
}

// DisplayState picks the state to render. Errors win over loading, loading
// over an empty list.
func DisplayState(status Status, views Views) State {
	switch {
	case status.Errored:
		return StateErrored
	case status.Loading:
		return StateLoading
	case views.Empty():
		return StateEmpty
	default:
		return StateReady
	}
}
