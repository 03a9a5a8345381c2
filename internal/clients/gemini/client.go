package gemini

import (
	"context"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
)

type Model string

// DefaultModel is used when no model is configured.
const DefaultModel Model = "gemini-1.5-flash"

var ErrEmptyResponse = errors.New("gemini returned no text content")

type Client struct {
	client            *genai.Client
	model             Model
	maxAttempts       int
	minuteRateLimiter *rate.Limiter
	dayRateLimiter    *rate.Limiter
}

func NewClient(ctx context.Context, apiKey string, model Model) (*Client, error) {

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, errors.Wrap(err, "create genai client")
	}

	return &Client{
		client:      client,
		model:       lo.Ternary(model != "", model, DefaultModel),
		maxAttempts: 1,
	}, nil
}

func (c *Client) SetMinuteRateLimit(maxRequestsPerMinute float32) {
	if maxRequestsPerMinute <= 0 {
		return
	}
	c.minuteRateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerMinute/60), 1)
}

func (c *Client) SetDayRateLimit(maxRequestsPerDay float32) {
	if maxRequestsPerDay <= 0 {
		return
	}
	c.dayRateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerDay/86400), int(maxRequestsPerDay))
}

// SetMaxAttempts enables retries of internal server errors. One attempt means no retry.
func (c *Client) SetMaxAttempts(attempts int) {
	c.maxAttempts = max(attempts, 1)
}

func (c *Client) Close() error {
	return c.client.Close()
}

// GenerateStructuredResponse asks the model for a JSON document conforming to schema
// and returns the raw text of the first candidate.
func (c *Client) GenerateStructuredResponse(ctx context.Context, text string, schema *genai.Schema) (string, error) {

	model := c.client.GenerativeModel(string(c.model))
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = schema

	var resp string
	var err error

	_, _, _ = lo.AttemptWhileWithDelay(c.maxAttempts, 2*time.Second, func(i int, _ time.Duration) (error, bool) {
		if i > 0 {
			log.Warn("gemini api returned 500 error, retrying...")
		}
		resp, err = c.waitAndGenerateResponse(ctx, model, text)
		return err, isInternalError(err) && ctx.Err() == nil
	})

	return resp, err
}

func (c *Client) waitAndGenerateResponse(ctx context.Context, model *genai.GenerativeModel, text string) (string, error) {

	limiters := []*rate.Limiter{c.minuteRateLimiter, c.dayRateLimiter}
	for _, limiter := range limiters {
		if limiter != nil {
			err := limiter.Wait(ctx)
			if err != nil {
				return "", err
			}
		}
	}

	return tryGenerateResponse(ctx, model, text)
}

func tryGenerateResponse(ctx context.Context, model *genai.GenerativeModel, text string) (string, error) {

	response, err := model.GenerateContent(ctx, genai.Text(text))
	if err != nil {
		return "", err
	}

	return firstText(response)
}

func firstText(response *genai.GenerateContentResponse) (string, error) {
	if response == nil || len(response.Candidates) == 0 {
		return "", ErrEmptyResponse
	}

	content := response.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	var builder strings.Builder
	for _, part := range content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			builder.WriteString(string(textPart))
		}
	}

	if builder.Len() == 0 {
		return "", errors.New("response part is not text")
	}
	return builder.String(), nil
}

func isInternalError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "Error 500")
}
