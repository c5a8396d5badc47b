package analyze

import (
	"fmt"
	"strings"

	"github.com/exec-review/cli/internal/extract"
	"github.com/exec-review/cli/internal/persona"
	"github.com/exec-review/cli/internal/textutil"
)

// Truncation limits applied when embedding extracted text into prompts.
const (
	summaryPromptMaxChars = 10000
	personaPromptMaxChars = 8000
)

const contentSummaryPrompt = `
Analyze the following content and provide a concise executive summary.
Focus on:
1. Main topics and themes covered
2. Key claims or demonstrations made
3. Value propositions presented
4. Any notable gaps or missing information

Content:
%s

Provide a 2-3 paragraph summary suitable for executive review.
`

const personaAnalysisPrompt = `
You are acting as a %s (%s) reviewing the following content.

Your focus areas are: %s

Your perspective: %s

Your typical concerns include:
%s

Content Summary:
%s

Full Content:
%s

Based on this content, provide:

1. **Questions You Would Ask** (5-8 questions)
   For each question:
   - The question itself
   - Category (strategic/technical/financial/operational/security/timeline/integration/risk)
   - Why you would ask this (your reasoning)
   - How the presenter should prepare to answer

2. **Key Concerns** (3-5 concerns)
   For each concern:
   - Title
   - Description
   - Severity (high/medium/low)
   - Why it matters to you

3. **Expected Follow-ups** (3-5 items)
   What additional information or meetings would you request after this presentation?

4. **Risks Identified** (2-4 risks)
   For each risk:
   - Title
   - Potential impact
   - Suggested mitigation

5. **Recommendations for Presenter** (3-5 recommendations)
   How should they improve or prepare for presenting to someone in your role?
`

// BuildSummaryPrompt renders the content-summary prompt for an external
// reasoning engine, truncating the content to its size limit.
func BuildSummaryPrompt(content *extract.Result) string {
	return fmt.Sprintf(contentSummaryPrompt, textutil.Truncate(content.Text, summaryPromptMaxChars))
}

// BuildPersonaPrompt renders the persona-analysis prompt for an external
// reasoning engine.
func BuildPersonaPrompt(p persona.Persona, content *extract.Result, contentSummary string) string {
	concerns := make([]string, 0, len(p.KeyConcerns))
	for _, c := range p.KeyConcerns {
		concerns = append(concerns, "- "+c)
	}

	return fmt.Sprintf(personaAnalysisPrompt,
		p.Title,
		p.Name,
		strings.Join(p.FocusAreas, ", "),
		p.Perspective,
		strings.Join(concerns, "\n"),
		contentSummary,
		textutil.Truncate(content.Text, personaPromptMaxChars),
	)
}
