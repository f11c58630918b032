package mail

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSES struct {
	input *sesv2.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &sesv2.SendEmailOutput{}, nil
}

func TestSESMailerSend(t *testing.T) {
	api := &fakeSES{}
	mailer := &SESMailer{api: api, from: "news@example.com"}

	require.NoError(t, mailer.Send(context.Background(), "fan@example.com", "New game added: Zed", "<p>Zed</p>"))
	assert.Equal(t, "news@example.com", aws.ToString(api.input.FromEmailAddress))
	assert.Equal(t, []string{"fan@example.com"}, api.input.Destination.ToAddresses)
	assert.Equal(t, "New game added: Zed", aws.ToString(api.input.Content.Simple.Subject.Data))
	assert.Equal(t, "<p>Zed</p>", aws.ToString(api.input.Content.Simple.Body.Html.Data))

	api.err = fmt.Errorf("throttled")
	assert.ErrorContains(t, mailer.Send(context.Background(), "fan@example.com", "s", "b"), "throttled")
}

func TestNewMessage(t *testing.T) {
	msg, err := newMessage("news@example.com", "fan@example.com", "New game added: Zed", "<p>Zed</p>")
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Subject: New game added: Zed")
	assert.Contains(t, buf.String(), "text/html")

	_, err = newMessage("news@example.com", "not an address", "s", "b")
	assert.Error(t, err)
}

func TestNewSMTPMailerRequiresHostAndSender(t *testing.T) {
	_, err := NewSMTPMailer(SMTPConfig{})
	assert.Error(t, err)

	_, err = NewSMTPMailer(SMTPConfig{Host: "smtp.example.com"})
	assert.Error(t, err)

	m, err := NewSMTPMailer(SMTPConfig{Host: "smtp.example.com", Port: 587, Username: "bot@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "bot@example.com", m.cfg.From)
}

func TestLogMailerNeverFails(t *testing.T) {
	assert.NoError(t, NewLogMailer().Send(context.Background(), "a@example.com", "s", "<p>b</p>"))
}
