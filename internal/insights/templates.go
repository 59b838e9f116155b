package insights

import (
	"fmt"
	"strings"
)

// renderInsight fills the archetype's four-part template from intake fields.
// Every part is non-empty for every archetype.
func renderInsight(a Archetype, in Intake) Insight {
	role := in.Role
	if strings.TrimSpace(role) == "" {
		role = "your current role"
	}
	domain := in.Domain
	if strings.TrimSpace(domain) == "" {
		domain = "your field"
	}

	switch a {
	case MovementVsProgress:
		return Insight{
			Archetype: a,
			Diagnosis: fmt.Sprintf("You've been in %s for a while and the urgency you report suggests the role has stopped growing with you.", role),
			Pattern:   "Staying busy in a familiar position can feel like progress while your market value plateaus.",
			Risk:      "Another year of the same responsibilities makes the eventual move harder, not easier.",
			NextStep:  fmt.Sprintf("Write down what a meaningfully better position in %s looks like, then log one application against that bar this week.", domain),
		}
	case ConversionGap:
		return Insight{
			Archetype: a,
			Diagnosis: "Your pipeline produces activity but not conversions; applications aren't turning into advancing processes.",
			Pattern:   "Sending more of the same applications multiplies effort without touching the step that filters you out.",
			Risk:      "Burning through target companies with an unfixed bottleneck shrinks the pool you can retry later.",
			NextStep:  fmt.Sprintf("Pick your last five rejections and find the common stage they died at before sending another %s application.", domain),
		}
	case DirectionUnclear:
		return Insight{
			Archetype: a,
			Diagnosis: fmt.Sprintf("You want a change from %s but the destination isn't defined enough to aim at.", role),
			Pattern:   "Searching without a direction turns every posting into a maybe, which stalls decisions instead of creating options.",
			Risk:      "Applying broadly while unclear reads as unfocused to the people screening you.",
			NextStep:  "List three roles you'd genuinely accept and rule two of them out with one conversation each.",
		}
	case StalledPipeline:
		return Insight{
			Archetype: a,
			Diagnosis: "Your search has urgency but the processes in flight aren't moving, and waiting is the current strategy.",
			Pattern:   "When responses stall, attention drifts to refreshing inboxes instead of opening new fronts.",
			Risk:      "A pipeline that depends on other people's timelines leaves you with no moves when they go quiet.",
			NextStep:  "Follow up on your oldest quiet application today and log two new ones this week.",
		}
	case FoundationBuilding:
		return Insight{
			Archetype: a,
			Diagnosis: fmt.Sprintf("You're early in building a track record in %s, and the search mechanics matter less than the base you're standing on.", domain),
			Pattern:   "Early searches overweight application volume and underweight the proof points that make applications land.",
			Risk:      "Skipping foundation work now means competing on volume against people competing on evidence.",
			NextStep:  fmt.Sprintf("Ship one concrete, showable piece of work relevant to %s before widening the search.", role),
		}
	default:
		// Closed set: unknown archetypes fall back to the broadest copy.
		return renderInsight(FoundationBuilding, in)
	}
}
