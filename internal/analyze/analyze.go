// Package analyze produces per-persona review material from extracted
// content. The generation here is deliberately template-driven: it fills in
// each persona's canned concerns and focus areas so the surrounding pipeline
// is complete, and the Analyze seam is where a real reasoning engine can be
// substituted later without touching extraction or reporting.
package analyze

import (
	"fmt"
	"sort"
	"strings"

	"github.com/exec-review/cli/internal/extract"
	"github.com/exec-review/cli/internal/persona"
)

// Category classifies an executive question.
type Category string

const (
	CategoryStrategic   Category = "strategic"
	CategoryTechnical   Category = "technical"
	CategoryFinancial   Category = "financial"
	CategoryOperational Category = "operational"
	CategorySecurity    Category = "security"
	CategoryTimeline    Category = "timeline"
	CategoryIntegration Category = "integration"
	CategoryRisk        Category = "risk"
)

// Severity ranks concerns and recommendation priorities.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Question is something an executive would ask about the content.
type Question struct {
	Text              string
	Category          Category
	Reasoning         string
	SuggestedResponse string
}

// Concern is an issue the persona would raise.
type Concern struct {
	Title        string
	Description  string
	Severity     Severity
	WhyItMatters string
}

// Risk is a risk the persona would flag.
type Risk struct {
	Title      string
	Impact     string
	Mitigation string
}

// Recommendation advises the presenter how to prepare for this persona.
type Recommendation struct {
	Text     string
	Priority Severity
}

// Result holds the full analysis for one persona.
type Result struct {
	Persona         persona.Persona
	Questions       []Question
	Concerns        []Concern
	Followups       []string
	Risks           []Risk
	Recommendations []Recommendation
}

// categoryByPersona maps each persona to the category its questions default to.
var categoryByPersona = map[persona.Type]Category{
	persona.CEO:          CategoryStrategic,
	persona.CFO:          CategoryFinancial,
	persona.CTO:          CategoryTechnical,
	persona.VPProduct:    CategoryStrategic,
	persona.CISO:         CategorySecurity,
	persona.VPOperations: CategoryOperational,
}

// followupsByPersona holds the canned follow-up requests per persona.
var followupsByPersona = map[persona.Type][]string{
	persona.CEO: {
		"Schedule a strategic alignment review with leadership team",
		"Provide competitive analysis and market positioning data",
		"Present 3-year impact projection",
	},
	persona.CFO: {
		"Provide detailed TCO breakdown",
		"Submit ROI analysis with assumptions documented",
		"Present budget allocation proposal",
	},
	persona.CTO: {
		"Provide architectural documentation",
		"Schedule technical deep-dive with engineering team",
		"Present integration assessment and timeline",
	},
	persona.VPProduct: {
		"Present user research and feedback data",
		"Provide roadmap impact analysis",
		"Schedule product strategy alignment meeting",
	},
	persona.CISO: {
		"Submit security assessment documentation",
		"Provide compliance certification details",
		"Present data flow and access control diagrams",
	},
	persona.VPOperations: {
		"Provide implementation timeline and milestones",
		"Submit training and change management plan",
		"Present operational impact assessment",
	},
}

// Analyze generates the review material for a single persona.
func Analyze(content *extract.Result, p persona.Persona) *Result {
	return &Result{
		Persona:         p,
		Questions:       generateQuestions(p),
		Concerns:        generateConcerns(p),
		Followups:       generateFollowups(p),
		Risks:           generateRisks(p),
		Recommendations: generateRecommendations(p),
	}
}

// AnalyzeAll runs the analysis for each requested persona type, in order.
// Types missing from the catalog are skipped.
func AnalyzeAll(content *extract.Result, types []persona.Type) []*Result {
	var results []*Result
	for _, t := range types {
		p, ok := persona.Get(t)
		if !ok {
			continue
		}
		results = append(results, Analyze(content, p))
	}
	return results
}

// generateQuestions turns the persona's first five key concerns into
// questions tagged with the persona's default category.
func generateQuestions(p persona.Persona) []Question {
	category, ok := categoryByPersona[p.Type]
	if !ok {
		category = CategoryStrategic
	}

	concerns := p.KeyConcerns
	if len(concerns) > 5 {
		concerns = concerns[:5]
	}

	questions := make([]Question, 0, len(concerns))
	for _, concern := range concerns {
		questions = append(questions, Question{
			Text:      concern,
			Category:  category,
			Reasoning: fmt.Sprintf("As %s, this is a core area of responsibility.", p.Title),
			SuggestedResponse: fmt.Sprintf(
				"Prepare data and examples that address this from a %s perspective, focusing on %s.",
				p.Title, p.FocusAreas[0]),
		})
	}
	return questions
}

// generateConcerns builds one concern per focus area (first three), with
// severity assigned positionally HIGH, MEDIUM, LOW.
func generateConcerns(p persona.Persona) []Concern {
	severities := []Severity{SeverityHigh, SeverityMedium, SeverityLow}

	areas := p.FocusAreas
	if len(areas) > 3 {
		areas = areas[:3]
	}

	concerns := make([]Concern, 0, len(areas))
	for i, area := range areas {
		concerns = append(concerns, Concern{
			Title:       fmt.Sprintf("%s Assessment", area),
			Description: fmt.Sprintf("Content should address %s considerations.", strings.ToLower(area)),
			Severity:    severities[i],
			WhyItMatters: fmt.Sprintf(
				"As %s, %s is a critical factor in evaluating any initiative.",
				p.Title, strings.ToLower(area)),
		})
	}
	return concerns
}

func generateFollowups(p persona.Persona) []string {
	if followups, ok := followupsByPersona[p.Type]; ok {
		return followups
	}
	return []string{"Schedule follow-up meeting"}
}

// generateRisks builds a single risk from the persona's first focus area.
func generateRisks(p persona.Persona) []Risk {
	area := p.FocusAreas[0]
	lower := strings.ToLower(area)
	return []Risk{{
		Title:  fmt.Sprintf("%s Risk", area),
		Impact: fmt.Sprintf("Failure to address %s could impact initiative success.", lower),
		Mitigation: fmt.Sprintf(
			"Ensure %s requirements are documented and validated before proceeding.", lower),
	}}
}

// generateRecommendations builds three recommendations from the persona's
// first three focus areas, with priorities HIGH, MEDIUM, MEDIUM.
func generateRecommendations(p persona.Persona) []Recommendation {
	return []Recommendation{
		{
			Text: fmt.Sprintf("Lead with %s to capture %s attention.",
				strings.ToLower(p.FocusAreas[0]), p.Title),
			Priority: SeverityHigh,
		},
		{
			Text: fmt.Sprintf("Prepare quantifiable metrics related to %s.",
				strings.ToLower(p.FocusAreas[1])),
			Priority: SeverityMedium,
		},
		{
			Text: fmt.Sprintf("Anticipate questions about %s.",
				strings.ToLower(p.FocusAreas[2])),
			Priority: SeverityMedium,
		},
	}
}

// ConsolidatedQuestions merges questions across analyses, keeping the first
// occurrence of each question text and preserving order.
func ConsolidatedQuestions(analyses []*Result) []Question {
	seen := make(map[string]bool)
	var questions []Question
	for _, analysis := range analyses {
		for _, q := range analysis.Questions {
			if seen[q.Text] {
				continue
			}
			seen[q.Text] = true
			questions = append(questions, q)
		}
	}
	return questions
}

// severityRank orders HIGH before MEDIUM before LOW; unknown values sort last.
func severityRank(s Severity) int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	case SeverityLow:
		return 2
	}
	return 3
}

// ConsolidatedConcerns merges concerns across analyses and stably sorts them
// by severity, highest first.
func ConsolidatedConcerns(analyses []*Result) []Concern {
	var concerns []Concern
	for _, analysis := range analyses {
		concerns = append(concerns, analysis.Concerns...)
	}
	sort.SliceStable(concerns, func(i, j int) bool {
		return severityRank(concerns[i].Severity) < severityRank(concerns[j].Severity)
	})
	return concerns
}
