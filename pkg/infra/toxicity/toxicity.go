package toxicity

import (
	"encoding/json"
	"errors"
	"time"
)

const (
	ProviderOpenAI      = "openai"
	ProviderAnthropic   = "anthropic"
	ProviderAzure       = "azure"
	ProviderNeuralTrust = "neuraltrust"
	ProviderBedrock     = "bedrock"
	ProviderLocal       = "local"
	// ProviderDetoxify is the legacy name of the local classifier.
	ProviderDetoxify = "detoxify"
)

const (
	cbTimeout     = 30 * time.Second
	cbMaxFailures = 5
)

var ErrFailedModerationCall = errors.New("moderation service call failed")

// rawResponse keeps the upstream body for include_original_response. Bodies
// that are not JSON objects are dropped.
func rawResponse(body []byte) map[string]interface{} {
	if len(body) == 0 {
		return nil
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil
	}
	return raw
}
