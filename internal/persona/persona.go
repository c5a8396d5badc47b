// Package persona defines the fixed executive persona catalog and the
// selection logic that maps CLI input to a set of personas.
package persona

import (
	"strings"
)

// Type identifies an executive persona.
type Type string

const (
	CEO          Type = "ceo"
	CFO          Type = "cfo"
	CTO          Type = "cto"
	VPProduct    Type = "vp_product"
	CISO         Type = "ciso"
	VPOperations Type = "vp_operations"
)

// UserType identifies the kind of user requesting a review, used to pick a
// recommended persona subset when none is given explicitly.
type UserType string

const (
	SalesEngineer      UserType = "sales_engineer"
	ProductManager     UserType = "product_manager"
	Developer          UserType = "developer"
	TechnicalWriter    UserType = "technical_writer"
	Marketing          UserType = "marketing"
	SolutionsArchitect UserType = "solutions_architect"
)

// Persona is a static executive role profile. Loaded once, never mutated.
type Persona struct {
	Type          Type
	Name          string
	Title         string
	FocusAreas    []string
	QuestionStyle string
	KeyConcerns   []string
	Perspective   string
}

// All returns every persona type in catalog order.
func All() []Type {
	return []Type{CEO, CFO, CTO, VPProduct, CISO, VPOperations}
}

// Get looks up a persona definition by type.
func Get(t Type) (Persona, bool) {
	p, ok := catalog[t]
	return p, ok
}

// UserTypeDefaults returns the recommended persona subset for a user type.
func UserTypeDefaults(u UserType) []Type {
	return userTypeDefaults[u]
}

// DefaultSelection is used when no personas or user type were specified.
func DefaultSelection() []Type {
	return []Type{CEO, CTO}
}

var personaAliases = map[string]Type{
	"ceo":           CEO,
	"cfo":           CFO,
	"cto":           CTO,
	"vp_product":    VPProduct,
	"vpproduct":     VPProduct,
	"vp-product":    VPProduct,
	"product":       VPProduct,
	"ciso":          CISO,
	"security":      CISO,
	"vp_operations": VPOperations,
	"vpoperations":  VPOperations,
	"vp-operations": VPOperations,
	"operations":    VPOperations,
	"ops":           VPOperations,
}

// ParseList parses a comma-separated persona string. Unknown tokens are
// reported through warn and skipped, never fatal.
func ParseList(s string, warn func(token string)) []Type {
	var personas []Type
	for _, tok := range strings.Split(strings.ToLower(s), ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if t, ok := personaAliases[tok]; ok {
			personas = append(personas, t)
		} else if warn != nil {
			warn(tok)
		}
	}
	return personas
}

var userTypeAliases = map[string]UserType{
	"sales":               SalesEngineer,
	"sales_engineer":      SalesEngineer,
	"product":             ProductManager,
	"product_manager":     ProductManager,
	"pm":                  ProductManager,
	"developer":           Developer,
	"dev":                 Developer,
	"writer":              TechnicalWriter,
	"technical_writer":    TechnicalWriter,
	"marketing":           Marketing,
	"solutions":           SolutionsArchitect,
	"solutions_architect": SolutionsArchitect,
	"sa":                  SolutionsArchitect,
}

// ParseUserType parses a user type token.
func ParseUserType(s string) (UserType, bool) {
	u, ok := userTypeAliases[strings.TrimSpace(strings.ToLower(s))]
	return u, ok
}

var userTypeDefaults = map[UserType][]Type{
	SalesEngineer:      {CTO, CISO},
	ProductManager:     {CEO, VPProduct},
	Developer:          {CTO, VPOperations},
	TechnicalWriter:    {CEO, CFO},
	Marketing:          {CEO, CFO},
	SolutionsArchitect: {CTO, CISO, VPOperations},
}

var catalog = map[Type]Persona{
	CEO: {
		Type:  CEO,
		Name:  "Chief Executive Officer",
		Title: "CEO",
		FocusAreas: []string{
			"Strategic vision",
			"Market positioning",
			"Competitive advantage",
			"Company alignment",
			"Long-term value",
			"Stakeholder impact",
		},
		QuestionStyle: "Asks big-picture questions that connect initiatives to company strategy. " +
			"Focuses on 'why' and 'what impact' rather than 'how'. Wants to understand " +
			"market differentiation and alignment with company mission.",
		KeyConcerns: []string{
			"Does this align with our 3-year roadmap?",
			"What's the competitive advantage?",
			"How does this affect our market position?",
			"What's the impact on our stakeholders?",
			"Is this the best use of our resources?",
		},
		Perspective: "Views everything through the lens of strategic value and company-wide impact. " +
			"Concerned with how initiatives fit into the broader vision and whether they " +
			"position the company for long-term success.",
	},
	CFO: {
		Type:  CFO,
		Name:  "Chief Financial Officer",
		Title: "CFO",
		FocusAreas: []string{
			"Total cost of ownership",
			"Return on investment",
			"Budget allocation",
			"Financial risk",
			"Payback period",
			"Resource efficiency",
		},
		QuestionStyle: "Asks precise questions about numbers, costs, and financial justification. " +
			"Wants clear ROI calculations, TCO analysis, and understanding of financial risks. " +
			"Skeptical of vague value propositions.",
		KeyConcerns: []string{
			"What's the total cost of ownership?",
			"What's the expected ROI and payback period?",
			"How does this fit into our budget?",
			"What are the hidden costs?",
			"What's the financial risk if this fails?",
		},
		Perspective: "Views everything through financial metrics and business value. Needs clear " +
			"quantification of benefits and costs. Focused on ensuring responsible " +
			"allocation of company resources.",
	},
	CTO: {
		Type:  CTO,
		Name:  "Chief Technology Officer",
		Title: "CTO",
		FocusAreas: []string{
			"Technical architecture",
			"Scalability",
			"Integration complexity",
			"Technical debt",
			"Security architecture",
			"Technology standards",
		},
		QuestionStyle: "Asks deep technical questions about architecture, scalability, and integration. " +
			"Wants to understand how solutions fit into the existing tech stack and what " +
			"technical risks or debt they might introduce.",
		KeyConcerns: []string{
			"How does this integrate with our existing stack?",
			"What's the architectural impact?",
			"How does this scale?",
			"What technical debt does this create?",
			"What are the performance implications?",
		},
		Perspective: "Views everything through technical feasibility and architectural soundness. " +
			"Concerned with maintainability, scalability, and how solutions fit into the " +
			"broader technology strategy.",
	},
	VPProduct: {
		Type:  VPProduct,
		Name:  "VP of Product",
		Title: "VP of Product",
		FocusAreas: []string{
			"User value",
			"Product-market fit",
			"Feature prioritization",
			"Roadmap impact",
			"Customer needs",
			"Competitive features",
		},
		QuestionStyle: "Asks questions focused on user value and product strategy. Wants to understand " +
			"how features solve real customer problems and how they fit into the product " +
			"roadmap and competitive landscape.",
		KeyConcerns: []string{
			"What problem does this solve for users?",
			"How does this affect our product roadmap?",
			"What's the user adoption risk?",
			"How does this compare to competitor solutions?",
			"What's the MVP vs full vision?",
		},
		Perspective: "Views everything through the lens of user value and product strategy. " +
			"Focused on ensuring solutions address real customer needs and contribute " +
			"to a coherent product vision.",
	},
	CISO: {
		Type:  CISO,
		Name:  "Chief Information Security Officer",
		Title: "CISO",
		FocusAreas: []string{
			"Security posture",
			"Compliance requirements",
			"Data privacy",
			"Attack surface",
			"Risk assessment",
			"Incident response",
		},
		QuestionStyle: "Asks probing questions about security implications and compliance. Wants to " +
			"understand data flows, access controls, and potential vulnerabilities. " +
			"Skeptical until security is proven.",
		KeyConcerns: []string{
			"What's the attack surface?",
			"Is this SOC2/GDPR/HIPAA compliant?",
			"How is data protected at rest and in transit?",
			"What access controls are in place?",
			"What's the incident response plan?",
		},
		Perspective: "Views everything through security and compliance lens. Assumes breach " +
			"scenarios and evaluates defensive posture. Focused on protecting company " +
			"and customer data.",
	},
	VPOperations: {
		Type:  VPOperations,
		Name:  "VP of Operations",
		Title: "VP of Operations",
		FocusAreas: []string{
			"Implementation complexity",
			"Rollout planning",
			"Training requirements",
			"Change management",
			"Operational efficiency",
			"Support burden",
		},
		QuestionStyle: "Asks practical questions about implementation and ongoing operations. Wants " +
			"to understand the rollout plan, training needs, and impact on existing " +
			"workflows and support teams.",
		KeyConcerns: []string{
			"What's the rollout plan?",
			"What training is required?",
			"How does this affect existing workflows?",
			"What's the support burden?",
			"What's the change management strategy?",
		},
		Perspective: "Views everything through operational feasibility. Concerned with practical " +
			"implementation, team readiness, and sustainable operations. Focused on " +
			"ensuring smooth adoption and minimal disruption.",
	},
}
