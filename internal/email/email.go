package email

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SESAPI is the subset of the SES client used here.
type SESAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SESSender struct {
	client SESAPI
	from   string
}

func NewSESSender(ctx context.Context, region, from string) (*SESSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}
	return NewSESSenderWithClient(ses.NewFromConfig(cfg), from), nil
}

func NewSESSenderWithClient(client SESAPI, from string) *SESSender {
	return &SESSender{client: client, from: from}
}

func (s *SESSender) Send(ctx context.Context, msg Message) error {
	body := &types.Body{}
	if msg.Text != "" {
		body.Text = &types.Content{Data: aws.String(msg.Text), Charset: aws.String("UTF-8")}
	}
	if msg.HTML != "" {
		body.Html = &types.Content{Data: aws.String(msg.HTML), Charset: aws.String("UTF-8")}
	}

	out, err := s.client.SendEmail(ctx, &ses.SendEmailInput{
		Source:      aws.String(s.from),
		Destination: &types.Destination{ToAddresses: []string{msg.To}},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String("UTF-8")},
			Body:    body,
		},
	})
	if err != nil {
		return fmt.Errorf("ses send: %w", err)
	}

	slog.InfoContext(ctx, "email sent", "subject", msg.Subject, "message_id", aws.ToString(out.MessageId))
	return nil
}

type noopSender struct{}

// NewNoopSender logs instead of sending. Used when SES is not configured.
func NewNoopSender() Sender {
	return noopSender{}
}

func (noopSender) Send(ctx context.Context, msg Message) error {
	slog.InfoContext(ctx, "email disabled, skipping send", "subject", msg.Subject)
	return nil
}

func WelcomeEmail(to, name, appURL string) Message {
	greeting := "Welcome to SoloSuccess AI!"
	if name != "" {
		greeting = fmt.Sprintf("Welcome to SoloSuccess AI, %s!", name)
	}
	link := strings.TrimRight(appURL, "/") + "/onboarding"

	return Message{
		To:      to,
		Subject: "Welcome to SoloSuccess AI",
		Text: greeting + "\n\nYour AI team is ready. Finish onboarding to set your first goals:\n" +
			link + "\n",
		HTML: fmt.Sprintf(`<p>%s</p><p>Your AI team is ready. <a href="%s">Finish onboarding</a> to set your first goals.</p>`,
			html.EscapeString(greeting), html.EscapeString(link)),
	}
}

type AlertDetails struct {
	CompetitorName string
	Title          string
	Description    string
	Severity       string
	SourceURL      string
}

func CompetitorAlertEmail(to, appURL string, alert AlertDetails) Message {
	link := strings.TrimRight(appURL, "/") + "/competitors/alerts"
	subject := fmt.Sprintf("[%s] %s", strings.ToUpper(alert.Severity), alert.Title)

	var text strings.Builder
	fmt.Fprintf(&text, "%s\n\n", alert.Title)
	if alert.Description != "" {
		fmt.Fprintf(&text, "%s\n\n", alert.Description)
	}
	if alert.SourceURL != "" {
		fmt.Fprintf(&text, "Source: %s\n", alert.SourceURL)
	}
	fmt.Fprintf(&text, "Review all %s alerts: %s\n", alert.CompetitorName, link)

	var body strings.Builder
	fmt.Fprintf(&body, "<h2>%s</h2>", html.EscapeString(alert.Title))
	if alert.Description != "" {
		fmt.Fprintf(&body, "<p>%s</p>", html.EscapeString(alert.Description))
	}
	if alert.SourceURL != "" {
		fmt.Fprintf(&body, `<p><a href="%s">View the page</a></p>`, html.EscapeString(alert.SourceURL))
	}
	fmt.Fprintf(&body, `<p><a href="%s">Review all %s alerts</a></p>`,
		html.EscapeString(link), html.EscapeString(alert.CompetitorName))

	return Message{To: to, Subject: subject, Text: text.String(), HTML: body.String()}
}
