// Package ses delivers audit summaries through AWS SES.
package ses

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"freightaudit/internal/config"
	"freightaudit/internal/port"
)

type sesNotifier struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewNotifier creates an SES-backed AuditNotifier.
func NewNotifier(cfg *config.EmailConfig) (port.AuditNotifier, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	return &sesNotifier{
		client:      sesv2.NewFromConfig(awsCfg),
		fromAddress: cfg.FromAddress,
		fromName:    cfg.FromName,
	}, nil
}

func (n *sesNotifier) SendAuditSummary(ctx context.Context, toEmail string, summary port.AuditSummary) error {
	subject := fmt.Sprintf("Audit complete: %s — ₹%.2f potential overcharge", summary.Provider, summary.TotalOvercharge)
	body := fmt.Sprintf(
		"Courier invoice audit for %s has finished.\n\n"+
			"Shipments audited: %d\n"+
			"Shipments flagged: %d\n"+
			"Total billed:      ₹%.2f\n"+
			"Total overcharge:  ₹%.2f\n\n"+
			"Download the full discrepancy report from the dashboard.\n",
		summary.Provider, summary.TotalRows, summary.FlaggedRows, summary.TotalBilled, summary.TotalOvercharge,
	)

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fmt.Sprintf("%s <%s>", n.fromName, n.fromAddress)),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body)},
				},
			},
		},
	}

	if _, err := n.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("ses send email: %w", err)
	}
	return nil
}
