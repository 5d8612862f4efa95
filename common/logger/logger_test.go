package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"unicode/utf8"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"solosuccess.app/api/common/logger"
)

var _ = Describe("LogFields", func() {
	It("merges newer values over older ones", func() {
		ctx := logger.WithLogFields(context.Background(), logger.LogFields{
			UserID:    logger.Ptr(int64(1)),
			Component: "solosuccess.api",
		})
		ctx = logger.WithLogFields(ctx, logger.LogFields{
			JobID:     logger.Ptr(int64(9)),
			Component: "solosuccess.worker.scrape",
		})

		fields := logger.GetLogFields(ctx)
		Expect(*fields.UserID).To(Equal(int64(1)))
		Expect(*fields.JobID).To(Equal(int64(9)))
		Expect(fields.Component).To(Equal("solosuccess.worker.scrape"))
	})

	It("returns empty fields for a bare context", func() {
		Expect(logger.GetLogFields(context.Background())).To(Equal(logger.LogFields{}))
	})
})

var _ = Describe("TraceHandler", func() {
	It("adds context fields to every record", func() {
		var buf bytes.Buffer
		log := slog.New(logger.NewTraceHandler(slog.NewJSONHandler(&buf, nil)))

		ctx := logger.WithLogFields(context.Background(), logger.LogFields{
			CompetitorID: logger.Ptr(int64(42)),
			TaskType:     logger.Ptr("competitor_scrape"),
		})
		log.InfoContext(ctx, "scrape finished")

		Expect(buf.String()).To(ContainSubstring(`"competitor_id":42`))
		Expect(buf.String()).To(ContainSubstring(`"task_type":"competitor_scrape"`))
	})
})

var _ = Describe("Truncate", func() {
	It("leaves short strings alone", func() {
		Expect(logger.Truncate("short", 10)).To(Equal("short"))
	})

	It("cuts long strings and marks them", func() {
		Expect(logger.Truncate("abcdefghij", 4)).To(Equal("abcd..."))
	})

	It("backs off to a rune boundary", func() {
		out := logger.Truncate("価格表の変更", 4)
		Expect(out).To(Equal("価..."))
		Expect(utf8.ValidString(out)).To(BeTrue())
	})
})
