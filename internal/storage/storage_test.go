package storage_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"solosuccess.app/api/internal/storage"
)

type fakeS3 struct {
	put     *s3.PutObjectInput
	body    string
	deleted []string
	err     error
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.put = params
	data, _ := io.ReadAll(params.Body)
	f.body = string(data)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.deleted = append(f.deleted, aws.ToString(params.Key))
	return &s3.DeleteObjectOutput{}, nil
}

type fakePresigner struct {
	input   *s3.GetObjectInput
	expires time.Duration
}

func (f *fakePresigner) PresignGetObject(_ context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*storage.PresignedRequest, error) {
	f.input = params
	opts := s3.PresignOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	f.expires = opts.Expires
	return &storage.PresignedRequest{URL: "https://bucket.example/" + aws.ToString(params.Key) + "?sig=1"}, nil
}

var _ = Describe("ObjectKey", func() {
	It("nests documents under user and briefcase", func() {
		Expect(storage.ObjectKey(1, 2, 3, "Q3 Plan.PDF")).To(Equal("users/1/briefcases/2/3/q3-plan.pdf"))
	})
})

var _ = Describe("S3Store", func() {
	var (
		ctx       context.Context
		client    *fakeS3
		presigner *fakePresigner
		store     *storage.S3Store
	)

	BeforeEach(func() {
		ctx = context.Background()
		client = &fakeS3{}
		presigner = &fakePresigner{}
		store = storage.NewS3StoreWithClient(client, presigner, "docs", 10*time.Minute)
	})

	It("uploads with bucket, key and content type", func() {
		Expect(store.Put(ctx, "users/1/a.txt", strings.NewReader("hello"), "text/plain")).To(Succeed())

		Expect(aws.ToString(client.put.Bucket)).To(Equal("docs"))
		Expect(aws.ToString(client.put.Key)).To(Equal("users/1/a.txt"))
		Expect(aws.ToString(client.put.ContentType)).To(Equal("text/plain"))
		Expect(client.body).To(Equal("hello"))
	})

	It("wraps upload errors with the key", func() {
		client.err = errors.New("access denied")

		err := store.Put(ctx, "k", strings.NewReader(""), "text/plain")
		Expect(err).To(MatchError(ContainSubstring("putting object k")))
	})

	It("deletes objects", func() {
		Expect(store.Delete(ctx, "users/1/a.txt")).To(Succeed())
		Expect(client.deleted).To(ConsistOf("users/1/a.txt"))
	})

	It("presigns downloads as attachments", func() {
		url, err := store.PresignGet(ctx, "users/1/a.txt", "a.txt")
		Expect(err).NotTo(HaveOccurred())

		Expect(url).To(HavePrefix("https://bucket.example/users/1/a.txt"))
		Expect(presigner.expires).To(Equal(10 * time.Minute))
		Expect(aws.ToString(presigner.input.ResponseContentDisposition)).To(Equal("attachment; filename=a.txt"))
	})
})

var _ = Describe("noop store", func() {
	It("rejects uploads and downloads", func() {
		store := storage.NewNoopStore()

		Expect(store.Put(context.Background(), "k", strings.NewReader(""), "")).To(MatchError(storage.ErrDisabled))
		_, err := store.PresignGet(context.Background(), "k", "f")
		Expect(err).To(MatchError(storage.ErrDisabled))
		Expect(store.Delete(context.Background(), "k")).To(Succeed())
	})
})
