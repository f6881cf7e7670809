package spillboard

import (
	"strings"

	"github.com/BrandonKowalski/spillboard/pkg/spillboard/internal/locale"
)

type hint struct {
	button string
	id     locale.MessageID
}

// hintText builds the line drawn along the top edge, e.g.
// "2 of 5   A Next   B Back   X Skip". Empty when both hints and the counter
// are off.
func (o *Onboarding) hintText() string {
	var parts []string

	index, active := o.engine.ActiveStep()
	if o.props.ShowStepCounter && active {
		parts = append(parts, o.catalog.Counter(index, o.engine.StepCount()))
	}

	if o.props.ShowControlHints {
		var hints []hint
		switch {
		case !active:
			hints = []hint{{"A", locale.HintStart}, {"X", locale.HintSkip}}
		case o.engine.IsLast():
			hints = []hint{{"A", locale.HintFinish}, {"B", locale.HintBack}, {"X", locale.HintSkip}}
		default:
			hints = []hint{{"A", locale.HintNext}, {"B", locale.HintBack}, {"X", locale.HintSkip}}
		}
		for _, h := range hints {
			parts = append(parts, h.button+" "+o.catalog.Text(h.id))
		}
	}

	return strings.Join(parts, "   ")
}
