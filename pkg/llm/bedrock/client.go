package bedrock

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

const contentTypeJSON = "application/json"

// InvokeModelAPI is the slice of the Bedrock runtime client used here.
type InvokeModelAPI interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// Client is a minimal Bedrock runtime client for Anthropic chat models.
type Client struct {
	Model string
	api   InvokeModelAPI
}

func New(api InvokeModelAPI, model string) *Client {
	return &Client{Model: model, api: api}
}

// LoadAWSConfig resolves region and credentials through the default AWS chain.
func LoadAWSConfig(ctx context.Context, region string) (aws.Config, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return aws.Config{}, fmt.Errorf("load aws config: %w", err)
	}
	return cfg, nil
}

// NewFromConfig builds a Client backed by a real bedrockruntime client.
func NewFromConfig(cfg aws.Config, model string) *Client {
	return New(bedrockruntime.NewFromConfig(cfg), model)
}

// Generate sends the prompt as a single user message and returns the model reply.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	data, err := json.Marshal(newInvokeRequest(prompt))
	if err != nil {
		return "", err
	}

	out, err := c.api.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.Model),
		ContentType: aws.String(contentTypeJSON),
		Accept:      aws.String(contentTypeJSON),
		Body:        data,
	})
	if err != nil {
		return "", fmt.Errorf("bedrock invoke %s: %w", c.Model, err)
	}
	return extractText(out.Body)
}
