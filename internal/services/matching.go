package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/maxaizer/talenthub/internal/entities"
	"github.com/maxaizer/talenthub/internal/logger"
	"github.com/maxaizer/talenthub/internal/metrics"
	log "github.com/sirupsen/logrus"
	"github.com/xeipuuv/gojsonschema"
)

type aiClient interface {
	GenerateStructuredResponse(ctx context.Context, text string, schema *genai.Schema) (string, error)
}

var assessmentResponseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"score": {
			Type:        genai.TypeInteger,
			Description: "Match score from 0 to 100.",
		},
		"matchingPoints": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"missingSkills":  {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"improvements": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "Actionable 'How to improve' tips with specific phrasing examples.",
		},
	},
	Required: []string{"score", "matchingPoints", "missingSkills", "improvements"},
}

const assessmentJSONSchema = `{
	"type": "object",
	"required": ["score", "matchingPoints", "missingSkills", "improvements"],
	"properties": {
		"score": {"type": "integer", "minimum": 0, "maximum": 100},
		"matchingPoints": {"type": "array", "items": {"type": "string"}},
		"missingSkills": {"type": "array", "items": {"type": "string"}},
		"improvements": {"type": "array", "items": {"type": "string"}}
	}
}`

var assessmentValidator = mustCompileSchema(assessmentJSONSchema)

func mustCompileSchema(schema string) *gojsonschema.Schema {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	if err != nil {
		panic(err)
	}
	return compiled
}

// MatchingService scores a resume against a job description. It never caches:
// every call reaches the AI client.
type MatchingService struct {
	aiClient aiClient
}

func NewMatchingService(aiClient aiClient) *MatchingService {
	return &MatchingService{aiClient: aiClient}
}

// Assess always returns a usable result. On failure it is the fallback
// assessment, paired with ErrAssessmentUnavailable, ErrMalformedAssessment or
// ErrAssessmentCanceled.
func (m *MatchingService) Assess(ctx context.Context, resumeText, jobDescription string) (entities.AssessmentResult, error) {

	start := time.Now()
	response, err := m.aiClient.GenerateStructuredResponse(ctx, assessmentRequest(resumeText, jobDescription),
		assessmentResponseSchema)
	metrics.AssessmentDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
			metrics.AssessmentsCounter.WithLabelValues("canceled").Inc()
			log.Infof("assessment canceled: %v", err)
			return entities.FallbackAssessment(), fmt.Errorf("%w: %v", ErrAssessmentCanceled, err)
		}
		metrics.AssessmentsCounter.WithLabelValues("unavailable").Inc()
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeAiApi).Errorf("failed to generate assessment: %v", err)
		return entities.FallbackAssessment(), fmt.Errorf("%w: %v", ErrAssessmentUnavailable, err)
	}

	result, err := parseAssessment(response)
	if err != nil {
		metrics.AssessmentsCounter.WithLabelValues("malformed").Inc()
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeAiApi).
			Errorf("unexpected assessment response \"%v\": %v", response, err)
		return entities.FallbackAssessment(), fmt.Errorf("%w: %v", ErrMalformedAssessment, err)
	}

	metrics.AssessmentsCounter.WithLabelValues("ok").Inc()
	log.Infof("assessment done, score %d", result.Score)
	return result, nil
}

func assessmentRequest(resumeText, jobDescription string) string {
	var b strings.Builder
	b.WriteString("Critically analyze this resume against the job description below.\n\n")
	b.WriteString("1. Score the match from 0-100 as a whole number.\n")
	b.WriteString("2. List the points where the resume matches the job.\n")
	b.WriteString("3. Identify specific missing skills.\n")
	b.WriteString("4. IMPORTANT: Provide specific, actionable \"Before vs. After\" style resume improvement examples. ")
	b.WriteString("Reference exact requirements from the job description and show how the user can reword their ")
	b.WriteString("existing experience to better demonstrate those skills.\n\n")
	b.WriteString("Resume: " + resumeText + "\n")
	b.WriteString("Job Description: " + jobDescription + "\n")
	return b.String()
}

func parseAssessment(response string) (entities.AssessmentResult, error) {

	document := cleanJSON(response)

	validation, err := assessmentValidator.Validate(gojsonschema.NewStringLoader(document))
	if err != nil {
		return entities.AssessmentResult{}, err
	}
	if !validation.Valid() {
		violations := make([]string, 0, len(validation.Errors()))
		for _, violation := range validation.Errors() {
			violations = append(violations, violation.String())
		}
		return entities.AssessmentResult{}, errors.New(strings.Join(violations, "; "))
	}

	// the schema accepts integral floats such as 82.0 as integers
	var decoded struct {
		Score          float64  `json:"score"`
		MatchingPoints []string `json:"matchingPoints"`
		MissingSkills  []string `json:"missingSkills"`
		Improvements   []string `json:"improvements"`
	}
	if err = json.Unmarshal([]byte(document), &decoded); err != nil {
		return entities.AssessmentResult{}, err
	}
	return entities.AssessmentResult{
		Score:          int(decoded.Score),
		MatchingPoints: decoded.MatchingPoints,
		MissingSkills:  decoded.MissingSkills,
		Improvements:   decoded.Improvements,
	}, nil
}

// cleanJSON strips the markdown code fence models sometimes wrap JSON in.
func cleanJSON(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
