package handler_test

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"solosuccess.app/api/internal/http/handler"
	"solosuccess.app/api/internal/model"
	"solosuccess.app/api/internal/service"
)

var _ = Describe("ChatHandler", func() {
	var (
		router *gin.Engine
		svc    *mockChatService
	)

	BeforeEach(func() {
		svc = &mockChatService{}
		router = newAuthedRouter()
		router.POST("/chat", handler.NewChatHandler(svc).Send)
	})

	It("returns the reply", func() {
		svc.sendFn = func(_ context.Context, _ int64, params service.SendMessageParams) (*service.ChatReply, error) {
			Expect(*params.ConversationID).To(Equal(int64(100)))
			return &service.ChatReply{Reply: model.ChatMessage{Role: model.ChatRoleAssistant, Content: "Sure."}}, nil
		}

		w := doJSON(router, http.MethodPost, "/chat", map[string]string{"conversation_id": "100", "agent_id": "roxy", "message": "hi"})

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decode(w)["reply"]).To(HaveKeyWithValue("content", "Sure."))
	})

	It("requires agent and message", func() {
		Expect(doJSON(router, http.MethodPost, "/chat", map[string]string{"agent_id": "roxy"}).Code).To(Equal(http.StatusBadRequest))
	})

	DescribeTable("maps service errors",
		func(err error, status int) {
			svc.sendFn = func(context.Context, int64, service.SendMessageParams) (*service.ChatReply, error) {
				return nil, err
			}

			w := doJSON(router, http.MethodPost, "/chat", map[string]string{"agent_id": "roxy", "message": "hi"})

			Expect(w.Code).To(Equal(status))
		},
		Entry("model failure", fmt.Errorf("%w: upstream 529", service.ErrAssistantFailed), http.StatusBadGateway),
		Entry("no model configured", service.ErrFeatureUnavailable, http.StatusServiceUnavailable),
		Entry("foreign conversation", service.ErrConversationNotFound, http.StatusNotFound),
	)
})
