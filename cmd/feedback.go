package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/regimen/internal/scoring"
	"github.com/misterclayt0n/regimen/internal/tracker"
)

// cliFeedback prints a one line confirmation after each mutation.
type cliFeedback struct{}

func (cliFeedback) Notify(e tracker.Event) {
	mark := "✅"
	paint := color.New(color.FgGreen).SprintFunc()
	if e.Kind == tracker.EventWarning {
		mark = "⚠️ "
		paint = color.New(color.FgYellow).SprintFunc()
	}

	msg := fmt.Sprintf("%s %s", mark, paint(e.Action))
	if e.Date != "" {
		msg += " for " + e.Date
	}
	if e.Log != nil {
		msg += " · score " + scoreColor(e.Percent)
	}
	fmt.Println(msg)
}

// scoreColor renders a percent in its band colour.
func scoreColor(percent int) string {
	var c *color.Color
	switch scoring.BandFor(percent) {
	case scoring.BandGood:
		c = color.New(color.FgGreen, color.Bold)
	case scoring.BandFair:
		c = color.New(color.FgYellow, color.Bold)
	default:
		c = color.New(color.FgRed, color.Bold)
	}
	return c.Sprintf("%d%%", percent)
}
