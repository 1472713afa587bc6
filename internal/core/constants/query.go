package constants

import "time"

const (
	// DefaultBaseURL is the public Vision One API host.
	DefaultBaseURL = "https://api.xdr.trendmicro.com"
	// DetectionsPath is the Observed Attack Techniques detections endpoint.
	DetectionsPath = "/v3.0/oat/detections"

	// LookbackDays is the width of the query window ending now.
	LookbackDays   = 30
	LookbackWindow = LookbackDays * 24 * time.Hour

	// PageSize is sent as the top parameter. Only the first page is fetched.
	PageSize = 100

	// TimestampLayout is second-precision ISO-8601 in UTC with a literal Z.
	TimestampLayout = "2006-01-02T15:04:05Z"
)

// Request parameter and header names.
const (
	ParamDetectedStart = "detectedStartDateTime"
	ParamDetectedEnd   = "detectedEndDateTime"
	ParamIngestedStart = "ingestedStartDateTime"
	ParamIngestedEnd   = "ingestedEndDateTime"
	ParamTop           = "top"

	HeaderAuthorization = "Authorization"
	HeaderFilter        = "TMV1-Filter"
)

// DetectionFilter selects every risk level for the ptn and pts product codes.
// It is never built at runtime.
const DetectionFilter = "(riskLevel eq 'critical' or riskLevel eq 'high' or riskLevel eq 'medium' or riskLevel eq 'low' or riskLevel eq 'info') and (productCode eq 'ptn' or productCode eq 'pts')"
