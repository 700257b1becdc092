package mail

import (
	"context"
	"log"

	"retroart/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// SESMailer sends the completion notification through Amazon SES.

type SESMailer struct {
	client *sesv2.Client
	sender string
}

var _ interfaces.IMailer = (*SESMailer)(nil)

func NewSESMailer(client *sesv2.Client, sender string) *SESMailer {
	return &SESMailer{client: client, sender: sender}
}

func (m *SESMailer) Send(ctx context.Context, to, subject, body string) error {
	_, err := m.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(m.sender),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body)},
				},
			},
		},
	})
	if err != nil {
		log.Printf("[mail][ses] send failed to=%s err=%v", to, err)
		return err
	}
	log.Printf("[mail][ses] send success to=%s subject=%q", to, subject)
	return nil
}
