package model

// Risk levels attached to a matched filter
const (
	RiskCritical = "critical"
	RiskHigh     = "high"
	RiskMedium   = "medium"
	RiskLow      = "low"
	RiskInfo     = "info"
)

// DetectionList is one page of the OAT detections response.
type DetectionList struct {
	TotalCount int         `json:"totalCount"`
	Count      int         `json:"count"`
	Items      []Detection `json:"items"`
	NextLink   string      `json:"nextLink,omitempty"`
}

// Detection is a single observed attack technique event.
type Detection struct {
	Source           string          `json:"source"`
	UUID             string          `json:"uuid"`
	ProductCode      string          `json:"productCode,omitempty"`
	EntityType       string          `json:"entityType,omitempty"`
	EntityName       string          `json:"entityName,omitempty"`
	DetectedDateTime string          `json:"detectedDateTime"`
	IngestedDateTime string          `json:"ingestedDateTime"`
	Endpoint         *Endpoint       `json:"endpoint,omitempty"`
	Filters          []MatchedFilter `json:"filters"`
}

type Endpoint struct {
	EndpointName string   `json:"endpointName"`
	AgentGUID    string   `json:"agentGuid,omitempty"`
	IPs          []string `json:"ips,omitempty"`
}

type MatchedFilter struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Description       string   `json:"description,omitempty"`
	RiskLevel         string   `json:"riskLevel"`
	Type              string   `json:"type,omitempty"`
	MitreTacticIDs    []string `json:"mitreTacticIds,omitempty"`
	MitreTechniqueIDs []string `json:"mitreTechniqueIds,omitempty"`
}

// RiskWeight orders risk levels; unknown levels rank below info.
func RiskWeight(level string) int {
	switch level {
	case RiskCritical:
		return 5
	case RiskHigh:
		return 4
	case RiskMedium:
		return 3
	case RiskLow:
		return 2
	case RiskInfo:
		return 1
	default:
		return 0
	}
}

// HighestRisk returns the most severe risk level among the matched filters.
func (d Detection) HighestRisk() string {
	highest := ""
	for _, f := range d.Filters {
		if highest == "" || RiskWeight(f.RiskLevel) > RiskWeight(highest) {
			highest = f.RiskLevel
		}
	}
	return highest
}

// DisplayEntity prefers the entity name and falls back to the endpoint name.
func (d Detection) DisplayEntity() string {
	if d.EntityName != "" {
		return d.EntityName
	}
	if d.Endpoint != nil {
		return d.Endpoint.EndpointName
	}
	return ""
}
