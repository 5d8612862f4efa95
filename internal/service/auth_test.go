package service_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"solosuccess.app/api/common/id"
	"solosuccess.app/api/internal/model"
	"solosuccess.app/api/internal/queue"
	"solosuccess.app/api/internal/service"
	"solosuccess.app/api/internal/store"
)

var _ = Describe("AuthService", func() {
	var (
		ctx           context.Context
		users         *mockUserStore
		sessions      *mockSessionStore
		subscriptions *mockSubscriptionStore
		identity      *mockIdentityProvider
		producer      *mockProducer
		svc           service.AuthService
		newUser       bool
	)

	BeforeEach(func() {
		Expect(id.Init(1)).To(Succeed())
		ctx = context.Background()
		newUser = true
		users = &mockUserStore{
			upsertByEmailFn: func(context.Context, *model.User) (bool, error) { return newUser, nil },
		}
		sessions = &mockSessionStore{}
		subscriptions = &mockSubscriptionStore{}
		identity = &mockIdentityProvider{
			authenticateFn: func(_ context.Context, code string) (*service.Identity, error) {
				if code != "good-code" {
					return nil, errors.New("invalid_grant")
				}
				return &service.Identity{WorkOSID: "user_01", Email: "founder@example.com", Name: "Ada Founder", SessionID: "session_01"}, nil
			},
		}
		producer = &mockProducer{}
		tx := &fakeTxRunner{stores: &fakeStores{users: users, sessions: sessions, subscriptions: subscriptions}}
		svc = service.NewAuthService(tx, sessions, users, identity, producer)
	})

	Describe("AuthorizationURL", func() {
		It("returns a fresh state embedded in the URL", func() {
			url, state, err := svc.AuthorizationURL("")

			Expect(err).NotTo(HaveOccurred())
			Expect(state).To(HaveLen(32))
			Expect(url).To(ContainSubstring(state))

			_, other, _ := svc.AuthorizationURL("")
			Expect(other).NotTo(Equal(state))
		})
	})

	Describe("Exchange", func() {
		It("creates a session and queues a welcome email for new users", func() {
			user, session, err := svc.Exchange(ctx, "good-code")

			Expect(err).NotTo(HaveOccurred())
			Expect(user.Email).To(Equal("founder@example.com"))
			Expect(session.UserID).To(Equal(user.ID))
			Expect(*session.WorkOSSessionID).To(Equal("session_01"))
			Expect(session.ExpiresAt).To(BeTemporally("~", time.Now().Add(model.SessionTTL), time.Minute))
			Expect(sessions.created).To(HaveLen(1))
			Expect(producer.tasks).To(HaveLen(1))
			Expect(producer.tasks[0].EmailKind).To(Equal(queue.EmailWelcome))
		})

		It("skips the welcome email for returning users", func() {
			newUser = false

			_, _, err := svc.Exchange(ctx, "good-code")

			Expect(err).NotTo(HaveOccurred())
			Expect(producer.tasks).To(BeEmpty())
		})

		It("still logs in when the queue is disabled", func() {
			producer.err = queue.ErrQueueDisabled

			_, _, err := svc.Exchange(ctx, "good-code")

			Expect(err).NotTo(HaveOccurred())
		})

		It("returns ErrInvalidCode when the provider rejects the code", func() {
			_, _, err := svc.Exchange(ctx, "bad-code")

			Expect(err).To(MatchError(service.ErrInvalidCode))
			Expect(sessions.created).To(BeEmpty())
		})
	})

	Describe("ValidateSession", func() {
		It("returns ErrSessionExpired for unknown or expired sessions", func() {
			sessions.getValidFn = func(context.Context, int64) (*model.Session, error) {
				return nil, store.ErrNotFound
			}

			_, err := svc.ValidateSession(ctx, 1)

			Expect(err).To(MatchError(service.ErrSessionExpired))
		})

		It("returns the session's user", func() {
			sessions.getValidFn = func(context.Context, int64) (*model.Session, error) {
				return &model.Session{ID: 1, UserID: 42}, nil
			}
			users.getByIDFn = func(_ context.Context, uid int64) (*model.User, error) {
				return &model.User{ID: uid}, nil
			}

			user, err := svc.ValidateSession(ctx, 1)

			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal(int64(42)))
		})
	})

	Describe("Logout", func() {
		It("deletes the session and returns the provider logout URL", func() {
			workosSession := "session_01"
			sessions.getValidFn = func(context.Context, int64) (*model.Session, error) {
				return &model.Session{ID: 1, UserID: 42, WorkOSSessionID: &workosSession}, nil
			}

			url, err := svc.Logout(ctx, 1)

			Expect(err).NotTo(HaveOccurred())
			Expect(url).To(ContainSubstring("session_01"))
			Expect(sessions.deleted).To(ConsistOf(int64(1)))
		})

		It("succeeds for sessions that are already gone", func() {
			sessions.getValidFn = func(context.Context, int64) (*model.Session, error) {
				return nil, store.ErrNotFound
			}

			url, err := svc.Logout(ctx, 1)

			Expect(err).NotTo(HaveOccurred())
			Expect(url).To(BeEmpty())
		})
	})
})
