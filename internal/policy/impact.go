package policy

import "github.com/alexanderramin/aiguide/internal/domain"

// Scenario describes one way of using AI and what it does to the student.
type Scenario struct {
	Title   string
	Tagline string
	Summary string
	Points  []string
	Tier    domain.RiskTier
}

// ImpactScenarios returns the effective-use and harmful-use scenarios shown
// on the impact page, effective first.
func ImpactScenarios() []Scenario {
	return []Scenario{
		{
			Title:   "The Pilot (Effective Use)",
			Tagline: "AI acts as a tool to help you climb. You build higher.",
			Summary: "When you use AI effectively, you remain the pilot. You use the machine to handle the routine tasks, " +
				"summarize large amounts of info, or check your logic. But you make the decisions.",
			Points: []string{
				"Expansion: You understand more concepts in less time.",
				"Connection: You connect ideas that were previously unconnected.",
				"Voice: Your argument becomes sharper because you debated it with the AI.",
			},
			Tier: domain.TierSafe,
		},
		{
			Title:   "The Ghost (Bad Use)",
			Tagline: "It destroys your connections. You become a ghost.",
			Summary: "When you replace your thinking with AI, you are not just breaking rules; you are weakening your own mind. " +
				"Learning happens in the struggle to write a thought. If you skip the struggle, you skip the growth.",
			Points: []string{
				"Weakness: Your ability to think critically fades away.",
				"Loss of Self: You cannot defend 'your' work because you didn't think it. You are absent.",
				"Dependence: Without the tool, you are helpless. You are a passenger, not a pilot.",
			},
			Tier: domain.TierDanger,
		},
	}
}

// ImpactClosing is the closing note of the impact page.
const ImpactClosing = "Academic integrity isn't just about avoiding punishment. It's about protecting your brain's ability to think."
