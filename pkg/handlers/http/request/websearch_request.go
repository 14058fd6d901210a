package request

import (
	"errors"
	"strings"
)

type WebSearchRequest struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results,omitempty"`
}

func (r *WebSearchRequest) Validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return errors.New("query is required")
	}
	if r.MaxResults < 0 {
		return errors.New("max_results must be positive")
	}
	return nil
}
