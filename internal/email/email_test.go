package email_test

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"solosuccess.app/api/internal/email"
)

type fakeSES struct {
	input *ses.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(_ context.Context, params *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

var _ = Describe("SESSender", func() {
	It("builds the SES request", func() {
		client := &fakeSES{}
		sender := email.NewSESSenderWithClient(client, "hello@solosuccess.ai")

		err := sender.Send(context.Background(), email.Message{
			To:      "ada@example.com",
			Subject: "Hi",
			Text:    "plain",
			HTML:    "<p>rich</p>",
		})
		Expect(err).NotTo(HaveOccurred())

		Expect(aws.ToString(client.input.Source)).To(Equal("hello@solosuccess.ai"))
		Expect(client.input.Destination.ToAddresses).To(ConsistOf("ada@example.com"))
		Expect(aws.ToString(client.input.Message.Subject.Data)).To(Equal("Hi"))
		Expect(aws.ToString(client.input.Message.Body.Text.Data)).To(Equal("plain"))
		Expect(aws.ToString(client.input.Message.Body.Html.Data)).To(Equal("<p>rich</p>"))
	})

	It("omits empty bodies", func() {
		client := &fakeSES{}
		sender := email.NewSESSenderWithClient(client, "from@example.com")

		Expect(sender.Send(context.Background(), email.Message{To: "a@b.c", Subject: "s", Text: "t"})).To(Succeed())
		Expect(client.input.Message.Body.Html).To(BeNil())
	})

	It("wraps SES errors", func() {
		boom := errors.New("throttled")
		sender := email.NewSESSenderWithClient(&fakeSES{err: boom}, "from@example.com")

		err := sender.Send(context.Background(), email.Message{To: "a@b.c", Subject: "s", Text: "t"})
		Expect(err).To(MatchError(boom))
	})
})

var _ = Describe("templates", func() {
	It("personalises the welcome email", func() {
		msg := email.WelcomeEmail("ada@example.com", "Ada", "https://app.solosuccess.ai/")
		Expect(msg.Subject).To(Equal("Welcome to SoloSuccess AI"))
		Expect(msg.Text).To(ContainSubstring("Ada"))
		Expect(msg.Text).To(ContainSubstring("https://app.solosuccess.ai/onboarding"))
	})

	It("escapes alert content in html", func() {
		msg := email.CompetitorAlertEmail("ada@example.com", "https://app.solosuccess.ai", email.AlertDetails{
			CompetitorName: "Acme",
			Title:          "Acme changed <pricing>",
			Severity:       "urgent",
			SourceURL:      "https://acme.test/pricing",
		})
		Expect(msg.Subject).To(Equal("[URGENT] Acme changed <pricing>"))
		Expect(msg.HTML).To(ContainSubstring("Acme changed &lt;pricing&gt;"))
		Expect(msg.Text).To(ContainSubstring("Source: https://acme.test/pricing"))
	})

	It("noop sender never fails", func() {
		Expect(email.NewNoopSender().Send(context.Background(), email.Message{})).To(Succeed())
	})
})
