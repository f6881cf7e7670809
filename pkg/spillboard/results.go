package spillboard

// Action is how an onboarding run ended.
type Action int

const (
	ActionCompleted Action = iota // Next pressed on the last step
	ActionSkipped                 // Close control, skip button or backdrop tap
	ActionDismissed               // Hardware back on the intro, or the window was closed
)

func (a Action) String() string {
	switch a {
	case ActionCompleted:
		return "completed"
	case ActionSkipped:
		return "skipped"
	case ActionDismissed:
		return "dismissed"
	default:
		return "unknown"
	}
}

// Result is returned by Run.
type Result struct {
	Action    Action
	LastIndex int // Step index when the run ended; -1 means the intro
}
