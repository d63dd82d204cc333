package issues

// Severity is the risk level the model assigns during deep analysis.
type Severity string

const (
	SeverityLow      Severity = "Low"
	SeverityMedium   Severity = "Medium"
	SeverityHigh     Severity = "High"
	SeverityCritical Severity = "Critical"
)

// Severities lists the allowed enum values in schema order.
var Severities = []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}

// IssueAnalysis is the structured result of one analysis call. Once created
// it is immutable: the session store appends it exactly once and never
// mutates or removes entries. Field values are opaque model output; only
// their structural shape is validated on parse.
type IssueAnalysis struct {
	IssueType         string   `json:"issueType"`
	Severity          Severity `json:"severity"`
	SeverityScore     int      `json:"severityScore"`
	Description       string   `json:"description"`
	EvidenceSummary   string   `json:"evidenceSummary"`
	DeepAnalysis      string   `json:"deepAnalysis"`
	CitizenActions    string   `json:"citizenActions"`
	AuthorityActions  string   `json:"authorityActions"`
	ComplaintLetter   string   `json:"complaintLetter"`
	SessionInsights   string   `json:"sessionInsights"`
	RecommendedAction string   `json:"recommendedAction"`
	Department        string   `json:"department"`
	EstimatedPriority string   `json:"estimatedPriority"`
}
