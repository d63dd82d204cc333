package issues

import "github.com/bytebender77/AI-CitySense/internal/llm"

// requiredFields is the fixed, ordered field set of the analysis contract.
// Every field is mandatory in the schema sent to the inference backend and
// in the structural check applied to its response.
var requiredFields = []string{
	"issueType",
	"severity",
	"severityScore",
	"description",
	"evidenceSummary",
	"deepAnalysis",
	"citizenActions",
	"authorityActions",
	"complaintLetter",
	"sessionInsights",
	"recommendedAction",
	"department",
	"estimatedPriority",
}

// ResponseSchema declares the structured-output contract for one analysis.
func ResponseSchema() *llm.Schema {
	severities := make([]string, 0, len(Severities))
	for _, s := range Severities {
		severities = append(severities, string(s))
	}

	return &llm.Schema{
		Type: llm.TypeObject,
		Properties: map[string]*llm.Schema{
			"issueType":         {Type: llm.TypeString, Description: "The Issue Category identified in Detection"},
			"severity":          {Type: llm.TypeString, Enum: severities, Description: "The Risk Level identified in Deep Analysis"},
			"severityScore":     {Type: llm.TypeInteger, Description: "The Severity (1-10) identified in Detection"},
			"description":       {Type: llm.TypeString, Description: "Professional technical description"},
			"evidenceSummary":   {Type: llm.TypeString, Description: "Evidence observed in Detection"},
			"deepAnalysis":      {Type: llm.TypeString, Description: "Full text of the Deep Analysis section (Safety, Env, Pop, Root Cause) in Markdown"},
			"citizenActions":    {Type: llm.TypeString, Description: "Citizen Actions from Recommendations"},
			"authorityActions":  {Type: llm.TypeString, Description: "Authority Actions from Recommendations"},
			"complaintLetter":   {Type: llm.TypeString, Description: "The Generated Complaint Letter"},
			"sessionInsights":   {Type: llm.TypeString, Description: "Session Insights comparing with history"},
			"recommendedAction": {Type: llm.TypeString, Description: "Short summary of authority action"},
			"department":        {Type: llm.TypeString, Description: "Responsible City Department"},
			"estimatedPriority": {Type: llm.TypeString, Description: "Priority Estimation"},
		},
		Required:         append([]string(nil), requiredFields...),
		PropertyOrdering: append([]string(nil), requiredFields...),
	}
}
