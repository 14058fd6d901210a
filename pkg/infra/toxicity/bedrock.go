package toxicity

import (
	"context"
	"fmt"
	"strings"
	"time"

	infrabedrock "github.com/Setharkk/Skyent-dev/pkg/infra/bedrock"
	"github.com/Setharkk/Skyent-dev/pkg/moderation"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/sirupsen/logrus"
)

var guardrailConfidence = map[string]float64{
	"NONE":   0,
	"LOW":    0.25,
	"MEDIUM": 0.5,
	"HIGH":   1,
}

// BedrockGuardrailProvider runs texts through an AWS Bedrock guardrail. Content
// filters the guardrail blocked are flagged; their confidence becomes the score.
type BedrockGuardrailProvider struct {
	client      infrabedrock.Client
	logger      *logrus.Logger
	creds       *infrabedrock.Credentials
	guardrailID string
	version     string
}

func NewBedrockGuardrailProvider(
	client infrabedrock.Client,
	logger *logrus.Logger,
	creds *infrabedrock.Credentials,
	guardrailID, version string,
) *BedrockGuardrailProvider {
	return &BedrockGuardrailProvider{
		client:      client,
		logger:      logger,
		creds:       creds,
		guardrailID: guardrailID,
		version:     version,
	}
}

func (p *BedrockGuardrailProvider) Name() string { return ProviderBedrock }

func (p *BedrockGuardrailProvider) Available() bool {
	return p.client != nil && p.creds != nil && p.guardrailID != ""
}

func (p *BedrockGuardrailProvider) Classify(ctx context.Context, texts []string) (*moderation.Verdict, error) {
	if !p.Available() {
		return nil, moderation.ErrProviderUnavailable
	}

	runtime, err := p.client.Runtime(ctx, *p.creds)
	if err != nil {
		p.logger.WithError(err).Error("failed to create bedrock client")
		return nil, fmt.Errorf("failed to create bedrock client: %w", err)
	}

	content := make([]types.GuardrailContentBlock, 0, len(texts))
	for _, text := range texts {
		content = append(content, &types.GuardrailContentBlockMemberText{
			Value: types.GuardrailTextBlock{Text: aws.String(text)},
		})
	}

	startTime := time.Now()
	output, err := runtime.ApplyGuardrail(ctx, &bedrockruntime.ApplyGuardrailInput{
		Content:             content,
		GuardrailIdentifier: aws.String(p.guardrailID),
		GuardrailVersion:    aws.String(p.version),
		Source:              types.GuardrailContentSourceInput,
	})
	if err != nil {
		p.logger.WithError(err).Error("failed to call bedrock guardrail")
		return nil, fmt.Errorf("bedrock guardrail: %w", err)
	}
	p.logger.WithFields(logrus.Fields{
		"guardrail_id": p.guardrailID,
		"action":       output.Action,
		"latency_ms":   time.Since(startTime).Milliseconds(),
	}).Debug("bedrock guardrail assessed content")

	v := moderation.NewVerdict(ProviderBedrock)
	filters := make([]interface{}, 0)
	for _, assessment := range output.Assessments {
		if assessment.ContentPolicy == nil {
			continue
		}
		for _, filter := range assessment.ContentPolicy.Filters {
			score := guardrailConfidence[string(filter.Confidence)]
			v.SetRaw(strings.ToLower(string(filter.Type)), filter.Action == types.GuardrailContentPolicyActionBlocked, score)
			filters = append(filters, map[string]interface{}{
				"type":       string(filter.Type),
				"confidence": string(filter.Confidence),
				"action":     string(filter.Action),
			})
		}
	}
	v.Raw = map[string]interface{}{
		"action":  string(output.Action),
		"filters": filters,
	}
	return v.Finalize(), nil
}
