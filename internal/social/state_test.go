package social_test

import (
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"solosuccess.app/api/internal/model"
	"solosuccess.app/api/internal/social"
)

var _ = Describe("StateSigner", func() {
	var signer *social.StateSigner

	BeforeEach(func() {
		signer = social.NewStateSigner("test-secret")
	})

	It("round-trips the verifier for the issuing user", func() {
		state, verifier, err := signer.Issue(7, model.PlatformTwitter)
		Expect(err).NotTo(HaveOccurred())
		Expect(len(verifier)).To(BeNumerically(">=", 43))

		got, err := signer.Verify(state, 7, model.PlatformTwitter)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(verifier))
	})

	It("issues a fresh state each time", func() {
		a, _, _ := signer.Issue(7, model.PlatformTwitter)
		b, _, _ := signer.Issue(7, model.PlatformTwitter)
		Expect(a).NotTo(Equal(b))
	})

	It("rejects another user or platform", func() {
		state, _, _ := signer.Issue(7, model.PlatformTwitter)

		_, err := signer.Verify(state, 8, model.PlatformTwitter)
		Expect(err).To(MatchError(social.ErrInvalidState))

		_, err = signer.Verify(state, 7, model.PlatformLinkedIn)
		Expect(err).To(MatchError(social.ErrInvalidState))
	})

	It("rejects tampered and foreign states", func() {
		state, _, _ := signer.Issue(7, model.PlatformTwitter)

		_, err := signer.Verify(strings.Replace(state, ".", "x.", 1), 7, model.PlatformTwitter)
		Expect(err).To(MatchError(social.ErrInvalidState))

		_, err = social.NewStateSigner("other").Verify(state, 7, model.PlatformTwitter)
		Expect(err).To(MatchError(social.ErrInvalidState))

		_, err = signer.Verify("garbage", 7, model.PlatformTwitter)
		Expect(err).To(MatchError(social.ErrInvalidState))
	})

	It("expires after ten minutes", func() {
		start := time.Now()
		signer.SetClock(func() time.Time { return start })
		state, _, _ := signer.Issue(7, model.PlatformTwitter)

		signer.SetClock(func() time.Time { return start.Add(11 * time.Minute) })
		_, err := signer.Verify(state, 7, model.PlatformTwitter)
		Expect(err).To(MatchError(social.ErrInvalidState))
	})
})
