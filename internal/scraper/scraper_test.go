package scraper_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"unicode/utf8"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"solosuccess.app/api/internal/scraper"
)

const pricingPage = `<!doctype html>
<html>
<head>
  <title>  Acme   Pricing </title>
  <meta name="description" content="Simple plans for every team">
  <style>body { color: red }</style>
  <script>window.track()</script>
</head>
<body>
  <h1>Plans</h1>
  <p>Starter   $9/month</p>
  <noscript>enable js</noscript>
  <p>Pro $29/month</p>
</body>
</html>`

var _ = Describe("Extract", func() {
	It("pulls title, description and visible text", func() {
		page, err := scraper.Extract(strings.NewReader(pricingPage))
		Expect(err).NotTo(HaveOccurred())

		Expect(page.Title).To(Equal("Acme Pricing"))
		Expect(page.Description).To(Equal("Simple plans for every team"))
		Expect(page.Text).To(Equal("Plans Starter $9/month Pro $29/month"))
		Expect(page.Hash).To(HaveLen(64))
	})

	It("ignores markup-only changes", func() {
		a, err := scraper.Extract(strings.NewReader(`<html><body><p>Hello world</p></body></html>`))
		Expect(err).NotTo(HaveOccurred())
		b, err := scraper.Extract(strings.NewReader(`<html><body><div class="x"><span>Hello</span>   world</div></body></html>`))
		Expect(err).NotTo(HaveOccurred())

		Expect(a.Hash).To(Equal(b.Hash))
	})

	It("detects text changes", func() {
		a, _ := scraper.Extract(strings.NewReader(`<p>Pro $29/month</p>`))
		b, _ := scraper.Extract(strings.NewReader(`<p>Pro $39/month</p>`))

		Expect(a.Hash).NotTo(Equal(b.Hash))
	})

	It("falls back to the open graph description", func() {
		page, err := scraper.Extract(strings.NewReader(`<html><head><meta property="og:description" content="From OG"></head></html>`))
		Expect(err).NotTo(HaveOccurred())
		Expect(page.Description).To(Equal("From OG"))
	})
})

var _ = Describe("Page.Excerpt", func() {
	It("returns short text unchanged", func() {
		p := &scraper.Page{Text: "short"}
		Expect(p.Excerpt()).To(Equal("short"))
	})

	It("cuts long text on a word boundary", func() {
		p := &scraper.Page{Text: strings.Repeat("word ", 100)}
		excerpt := p.Excerpt()
		Expect(len(excerpt)).To(BeNumerically("<=", 284))
		Expect(excerpt).To(HaveSuffix("word…"))
	})

	It("never splits a multi-byte character in text without spaces", func() {
		page, err := scraper.Extract(strings.NewReader("<p>" + strings.Repeat("価格表", 200) + "</p>"))
		Expect(err).NotTo(HaveOccurred())

		excerpt := page.Excerpt()
		Expect(utf8.ValidString(excerpt)).To(BeTrue())
		Expect(excerpt).To(HavePrefix("価格表"))
		Expect(strings.TrimSuffix(excerpt, "…")).To(HaveLen(279))
	})
})

var _ = Describe("HTTPFetcher", func() {
	var server *httptest.Server

	AfterEach(func() {
		server.Close()
	})

	It("sends the user agent and parses the body", func() {
		var gotUA string
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			_, _ = w.Write([]byte(pricingPage))
		}))

		fetcher := scraper.NewHTTPFetcher(scraper.Config{UserAgent: "TestBot/1.0"})
		page, err := fetcher.Fetch(context.Background(), server.URL)
		Expect(err).NotTo(HaveOccurred())
		Expect(gotUA).To(Equal("TestBot/1.0"))
		Expect(page.URL).To(Equal(server.URL))
		Expect(page.Title).To(Equal("Acme Pricing"))
	})

	It("fails on error statuses", func() {
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))

		_, err := scraper.NewHTTPFetcher(scraper.Config{}).Fetch(context.Background(), server.URL)
		Expect(err).To(MatchError(scraper.ErrUnexpectedStatus))
	})

	It("caps the body size", func() {
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<p>" + strings.Repeat("a", 1000) + "</p><p>tail</p>"))
		}))

		page, err := scraper.NewHTTPFetcher(scraper.Config{MaxBodyBytes: 100}).Fetch(context.Background(), server.URL)
		Expect(err).NotTo(HaveOccurred())
		Expect(page.Text).NotTo(ContainSubstring("tail"))
	})
})
