package search_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"solosuccess.app/api/core/config"
	"solosuccess.app/api/internal/model"
	"solosuccess.app/api/internal/search"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Body   map[string]any
	APIKey string
}

// fakeTypesense answers the handful of endpoints the index uses.
type fakeTypesense struct {
	mu         sync.Mutex
	requests   []recordedRequest
	collection bool
	hits       []map[string]any
}

func (f *fakeTypesense) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	req := recordedRequest{Method: r.Method, Path: r.URL.Path, Query: r.URL.Query(), APIKey: r.Header.Get("X-TYPESENSE-API-KEY")}
	if data, _ := io.ReadAll(r.Body); len(data) > 0 {
		_ = json.Unmarshal(data, &req.Body)
	}
	f.requests = append(f.requests, req)

	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/collections/documents":
		if !f.collection {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Not Found"}`))
			return
		}
		_, _ = w.Write([]byte(`{"name":"documents","fields":[],"num_documents":0,"created_at":1}`))
	case r.Method == http.MethodPost && r.URL.Path == "/collections":
		f.collection = true
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"name":"documents","fields":[],"num_documents":0,"created_at":1}`))
	case r.Method == http.MethodPost && r.URL.Path == "/collections/documents/documents":
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(req.Body)
	case r.Method == http.MethodGet && r.URL.Path == "/collections/documents/documents/search":
		hits := make([]map[string]any, 0, len(f.hits))
		for _, doc := range f.hits {
			hits = append(hits, map[string]any{"document": doc})
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"found": len(hits), "out_of": len(hits), "page": 1, "search_time_ms": 1, "hits": hits,
		})
	case r.Method == http.MethodDelete:
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
	default:
		w.WriteHeader(http.StatusTeapot)
	}
}

func (f *fakeTypesense) last() recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

var _ = Describe("TypesenseIndex", func() {
	var (
		ctx    context.Context
		fake   *fakeTypesense
		server *httptest.Server
		index  *search.TypesenseIndex
	)

	BeforeEach(func() {
		ctx = context.Background()
		fake = &fakeTypesense{}
		server = httptest.NewServer(fake)
		DeferCleanup(server.Close)
		index = search.NewTypesenseIndex(config.SearchConfig{URL: server.URL, APIKey: "secret", Collection: "documents"})
	})

	It("creates the collection when missing", func() {
		Expect(index.EnsureCollection(ctx)).To(Succeed())

		req := fake.last()
		Expect(req.Method).To(Equal(http.MethodPost))
		Expect(req.Path).To(Equal("/collections"))
		Expect(req.Body["name"]).To(Equal("documents"))
		Expect(req.APIKey).To(Equal("secret"))
	})

	It("leaves an existing collection alone", func() {
		fake.collection = true

		Expect(index.EnsureCollection(ctx)).To(Succeed())
		Expect(fake.requests).To(HaveLen(1))
	})

	It("upserts documents with string ids", func() {
		doc := &model.Document{ID: 42, UserID: 7, BriefcaseID: 3, Name: "Pitch deck", ContentType: "application/pdf", CreatedAt: time.Unix(1700000000, 0)}

		Expect(index.Index(ctx, doc)).To(Succeed())

		req := fake.last()
		Expect(req.Query.Get("action")).To(Equal("upsert"))
		Expect(req.Body["id"]).To(Equal("42"))
		Expect(req.Body["name"]).To(Equal("Pitch deck"))
		Expect(req.Body["tags"]).To(BeEmpty())
	})

	It("scopes searches to the user", func() {
		fake.hits = []map[string]any{{"id": "42"}, {"id": "43"}, {"id": "bogus"}}

		ids, err := index.Search(ctx, 7, "pitch", 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(ids).To(Equal([]int64{42, 43}))

		req := fake.last()
		Expect(req.Query.Get("q")).To(Equal("pitch"))
		Expect(req.Query.Get("filter_by")).To(Equal("user_id:=7"))
		Expect(req.Query.Get("per_page")).To(Equal("10"))
	})

	It("treats removing a missing document as done", func() {
		Expect(index.Remove(ctx, 42)).To(Succeed())
		Expect(fake.last().Path).To(Equal("/collections/documents/documents/42"))
	})
})

var _ = Describe("noop index", func() {
	It("asks callers to fall back", func() {
		_, err := search.NewNoopIndex().Search(context.Background(), 1, "q", 5)
		Expect(err).To(MatchError(search.ErrDisabled))
	})
})
