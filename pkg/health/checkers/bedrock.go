package checkers

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
)

// CredentialsChecker verifies that the AWS credential chain used by the
// Bedrock client yields usable credentials.
type CredentialsChecker struct {
	provider aws.CredentialsProvider
}

func NewCredentialsChecker(provider aws.CredentialsProvider) *CredentialsChecker {
	return &CredentialsChecker{provider: provider}
}

func (c *CredentialsChecker) Name() string { return "bedrock" }

func (c *CredentialsChecker) Check(ctx context.Context) error {
	if c.provider == nil {
		return errors.New("no aws credentials provider configured")
	}
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	creds, err := c.provider.Retrieve(ctx)
	if err != nil {
		return err
	}
	if !creds.HasKeys() {
		return errors.New("aws credentials are empty")
	}
	return nil
}
