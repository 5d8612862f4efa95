package llm_test

import (
	"context"
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"solosuccess.app/api/common/llm"
)

var _ = Describe("SanitizeName", func() {
	DescribeTable("produces a valid OpenAI name parameter",
		func(input, expected string) {
			Expect(llm.SanitizeName(input)).To(Equal(expected))
		},
		Entry("valid name unchanged", "maya", "maya"),
		Entry("dots replaced", "maya.lopez", "maya_lopez"),
		Entry("@ replaced", "maya@studio", "maya_studio"),
		Entry("hyphens preserved", "maya-lopez", "maya-lopez"),
		Entry("spaces replaced", "Maya Lopez", "Maya_Lopez"),
		Entry("long name truncated to 64 chars", strings.Repeat("a", 100), strings.Repeat("a", 64)),
		Entry("empty string unchanged", "", ""),
	)
})

var _ = Describe("ParseToolArguments", func() {
	type createTaskArgs struct {
		Title    string `json:"title"`
		Priority string `json:"priority"`
	}

	It("decodes JSON arguments", func() {
		args, err := llm.ParseToolArguments[createTaskArgs](`{"title":"Draft pitch deck","priority":"high"}`)
		Expect(err).NotTo(HaveOccurred())
		Expect(args.Title).To(Equal("Draft pitch deck"))
		Expect(args.Priority).To(Equal("high"))
	})

	It("treats empty arguments as an empty object", func() {
		args, err := llm.ParseToolArguments[createTaskArgs]("")
		Expect(err).NotTo(HaveOccurred())
		Expect(args.Title).To(BeEmpty())
	})

	It("rejects malformed JSON", func() {
		_, err := llm.ParseToolArguments[createTaskArgs](`{"title":`)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("GenerateSchema", func() {
	type palette struct {
		Name string `json:"name"`
		Hex  string `json:"hex"`
	}

	It("inlines properties without references", func() {
		data, err := jsonMarshal(llm.GenerateSchema[palette]())
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(ContainSubstring(`"hex"`))
		Expect(data).NotTo(ContainSubstring(`$ref`))
	})
})

var _ = Describe("constructors", func() {
	It("require an API key", func() {
		_, err := llm.NewChatClient(llm.Config{Provider: llm.ProviderOpenAI})
		Expect(err).To(MatchError(llm.ErrAPIKeyRequired))

		_, err = llm.NewStructuredClient(llm.Config{})
		Expect(err).To(MatchError(llm.ErrAPIKeyRequired))
	})

	It("reject unknown providers", func() {
		_, err := llm.NewChatClient(llm.Config{Provider: "cohere", APIKey: "k"})
		Expect(err).To(MatchError(ContainSubstring("unsupported LLM provider")))
	})

	It("default the model per provider", func() {
		c, err := llm.NewChatClient(llm.Config{Provider: llm.ProviderOpenAI, APIKey: "k"})
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Model()).To(Equal("gpt-4o-mini"))
	})
})

var _ = Describe("IsRetryable", func() {
	It("does not retry cancellation", func() {
		Expect(llm.IsRetryable(context.Background(), context.Canceled)).To(BeFalse())
	})

	It("retries transport errors", func() {
		Expect(llm.IsRetryable(context.Background(), errors.New("connection reset"))).To(BeTrue())
	})

	It("ignores nil", func() {
		Expect(llm.IsRetryable(context.Background(), nil)).To(BeFalse())
	})
})
