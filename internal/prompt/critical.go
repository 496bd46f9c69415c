package prompt

// ThinkingPrompt is a reusable prompt that makes an AI tool challenge the
// student's reasoning instead of replacing it.
type ThinkingPrompt struct {
	Title  string
	When   string
	Prompt string
}

var criticalThinking = []ThinkingPrompt{
	{
		Title:  "Question Assumptions",
		When:   "Use this when you feel certain but lack proof. It reveals weak foundations in your thinking.",
		Prompt: "I'm convinced that [your belief]. What hidden assumptions support this belief? What other explanations could account for this?",
	},
	{
		Title:  "Understand Opposing Views",
		When:   "Use this to prevent weak arguments. It forces you to deal with the strongest version of the other side.",
		Prompt: "Act as [person who disagrees with you] and explain their perspective in a way that makes their stance understandable.",
	},
	{
		Title:  "Spotting Biases",
		When:   "Use this when you feel emotional about a topic. It acts as a reality check for your brain's shortcuts.",
		Prompt: "I'm strongly convinced that [your position]. Which mental shortcuts or blind spots could be changing my view?",
	},
	{
		Title:  "Testing Logic",
		When:   "Use this to check your thinking. It finds the weak links in your chain of reasoning.",
		Prompt: "My reasoning is: [your reasoning]. Where does this argument break down or lack evidence?",
	},
	{
		Title:  "Analyze Future Effects",
		When:   "Use this for complex decisions. It helps you see the long-term results, not just the immediate ones.",
		Prompt: "I'm considering [potential decision]. What unexpected second and third-order consequences might happen later?",
	},
	{
		Title:  "Play Devil's Advocate",
		When:   "Use this before submitting work. It helps you prepare for criticism by finding your weaknesses first.",
		Prompt: "I'm planning to [your idea]. If you were arguing against this, what would be your most powerful objections?",
	},
	{
		Title:  "Verifying Sources",
		When:   "Use this when you see a shocking headline. It stops you from being misled by bad data.",
		Prompt: "I found this claim: [claim]. How would I fact-check this? What questions would help me assess whether this information is true?",
	},
	{
		Title:  "Revealing Blind Spots",
		When:   "Use this when you are stuck in a loop. It shines a light on solutions you might be missing.",
		Prompt: "I've tried [your solution attempts], but [problem] keeps coming back. What underlying factors am I failing to notice?",
	},
	{
		Title:  "Get Other Perspectives",
		When:   "Use this to break out of your bubble. It borrows the brains of experts in other fields.",
		Prompt: "I'm working through [your situation]. How might someone in [profession or discipline] tackle this? And someone from [different discipline]?",
	},
	{
		Title:  "Define Precisely",
		When:   "Use this when arguments go in circles. It ensures everyone is actually talking about the same thing.",
		Prompt: "Help me understand exactly what [term] means when we're talking about [situation]?",
	},
	{
		Title:  "Challenge 'The Usual Way'",
		When:   "Use this when 'the way we always do it' isn't working. It helps spark new ideas.",
		Prompt: "We've always used [current approach], but it's failing. Why might that be, and what unconventional alternatives could we explore?",
	},
	{
		Title:  "Facts Versus Opinions",
		When:   "Use this in heated debates. It separates what can be proven from what is just felt.",
		Prompt: "When discussing [topic], what factual points would both sides accept, compared to the value-driven perspectives where disagreement actually exists?",
	},
}

// CriticalThinking returns the critical-thinking prompt catalogue.
func CriticalThinking() []ThinkingPrompt {
	out := make([]ThinkingPrompt, len(criticalThinking))
	copy(out, criticalThinking)
	return out
}
