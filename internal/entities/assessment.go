package entities

type AssessmentResult struct {
	Score          int      `json:"score"`
	MatchingPoints []string `json:"matchingPoints"`
	MissingSkills  []string `json:"missingSkills"`
	Improvements   []string `json:"improvements"`
}

// FallbackAssessment is returned whenever the matching service can't produce a result.
func FallbackAssessment() AssessmentResult {
	return AssessmentResult{
		Score:          0,
		MatchingPoints: []string{"Error"},
		MissingSkills:  []string{"Analysis failed"},
		Improvements:   []string{"Please try again with a clearer resume text."},
	}
}
