package notifications

import (
	"context"
	"errors"

	appconfig "ketotrack/backend/pkg/config"
	ktlog "ketotrack/backend/pkg/log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"go.uber.org/zap"
)

// EmailNotifier defines the interface for outbound email delivery.
type EmailNotifier interface {
	Send(ctx context.Context, to, subject, bodyHTML, bodyText string) error
}

// SESEmailNotifier implements EmailNotifier using AWS SESv2.
type SESEmailNotifier struct {
	client *sesv2.Client
	sender string
}

// logNotifier is the development fallback: it logs the message instead of
// delivering it. The reset URL ends up in the body, so the log line doubles
// as the fallback delivery channel.
type logNotifier struct{}

func (n *logNotifier) Send(ctx context.Context, to, subject, bodyHTML, bodyText string) error {
	ktlog.L.Info("--- SIMULATING EMAIL SEND (fallback mode) ---",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", bodyText))
	return nil
}

// DefaultEmailNotifier is the notifier used by the application.
var DefaultEmailNotifier EmailNotifier = &logNotifier{}

// InitEmailService initializes the email notifier. Without an AWS region and
// sender address the console-logging fallback stays active, which is the
// expected mode for local development.
func InitEmailService() {
	log := ktlog.L.Named("InitEmailService")

	awsRegion := appconfig.Cfg.AWSRegion
	senderEmail := appconfig.Cfg.AWSSESSender

	if awsRegion == "" || senderEmail == "" {
		log.Warn("AWS SES email service is not configured (missing AWS_REGION or AWS_SES_EMAIL_SENDER). Emails will be logged to the console.")
		DefaultEmailNotifier = &logNotifier{}
		return
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(awsRegion))
	if err != nil {
		log.Error("Failed to load AWS SDK config for SES, falling back to console logging", zap.Error(err))
		DefaultEmailNotifier = &logNotifier{}
		return
	}

	DefaultEmailNotifier = &SESEmailNotifier{
		client: sesv2.NewFromConfig(cfg),
		sender: senderEmail,
	}
	log.Info("AWS SES email service initialized.", zap.String("sender", senderEmail), zap.String("region", awsRegion))
}

// Send delivers an email via SES.
func (s *SESEmailNotifier) Send(ctx context.Context, to, subject, bodyHTML, bodyText string) error {
	if s.client == nil {
		return errors.New("SES client not initialized")
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: &s.sender,
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(bodyHTML),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(bodyText),
						Charset: aws.String("UTF-8"),
					},
				},
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
			},
		},
	}

	_, err := s.client.SendEmail(ctx, input)
	if err != nil {
		ktlog.L.Error("Failed to send email via SES", zap.Error(err), zap.String("recipient", to))
		return err
	}

	ktlog.L.Info("Successfully sent email", zap.String("recipient", to), zap.String("subject", subject))
	return nil
}
