package utils

import (
	"context"
	"fmt"
	"sync"

	appcfg "github.com/Surya-k-bot/food-management-system/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var (
	sesOnce   sync.Once
	sesClient *ses.Client
	sesErr    error
)

// The client is built on first use so that processes with mail disabled
// (and tests) never touch AWS.
func client(region string) (*ses.Client, error) {
	sesOnce.Do(func() {
		var opts []func(*awsconfig.LoadOptions) error
		if region != "" {
			opts = append(opts, awsconfig.WithRegion(region))
		}
		cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), opts...)
		if err != nil {
			sesErr = fmt.Errorf("load AWS config: %w", err)
			return
		}
		sesClient = ses.NewFromConfig(cfg)
	})
	return sesClient, sesErr
}

// SendMail delivers one plain-text email via SES.
func SendMail(cfg *appcfg.App, to []string, subject, body string) error {
	if len(to) == 0 {
		return nil
	}

	c, err := client(cfg.AWSRegion)
	if err != nil {
		return err
	}

	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: to,
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(cfg.EmailFrom),
	}

	if _, err := c.SendEmail(context.TODO(), input); err != nil {
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}
