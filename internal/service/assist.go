package service

import (
	"errors"
	"strings"

	"github.com/octobees/staff-directory/internal/dto"
)

// AssistService prepares payloads for the AI link-generation worker. The
// worker itself is an opaque external service returning JSON.
type AssistService struct {
	DefaultLocation string
}

// NewAssistService creates an assist payload builder with sensible defaults.
func NewAssistService(defaultLocation string) *AssistService {
	if strings.TrimSpace(defaultLocation) == "" {
		defaultLocation = "Remote"
	}
	return &AssistService{DefaultLocation: defaultLocation}
}

// BuildLinksPayload validates the request and assembles the worker payload.
func (s *AssistService) BuildLinksPayload(req dto.AssistLinksRequest) (map[string]any, error) {
	first := strings.TrimSpace(req.FirstName)
	last := strings.TrimSpace(req.LastName)
	if first == "" && last == "" {
		return nil, errors.New("first_name or last_name is required")
	}

	location := strings.TrimSpace(req.Location)
	if location == "" {
		location = s.DefaultLocation
	}

	query := strings.Join(nonEmpty(first, last, strings.TrimSpace(req.JobTitle), strings.TrimSpace(req.Company)), " ")
	payload := map[string]any{
		"query":    query,
		"location": location,
	}
	if title := strings.TrimSpace(req.JobTitle); title != "" {
		payload["job_title"] = title
	}
	if company := strings.TrimSpace(req.Company); company != "" {
		payload["company"] = company
	}
	return payload, nil
}

func nonEmpty(values ...string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			result = append(result, v)
		}
	}
	return result
}
