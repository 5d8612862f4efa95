package handler_test

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"solosuccess.app/api/internal/http/handler"
	"solosuccess.app/api/internal/model"
	"solosuccess.app/api/internal/service"
)

var _ = Describe("TaskHandler", func() {
	var (
		router *gin.Engine
		svc    *mockTaskService
	)

	BeforeEach(func() {
		svc = &mockTaskService{}
		h := handler.NewTaskHandler(svc)
		router = newAuthedRouter()
		router.GET("/tasks", h.List)
		router.POST("/tasks", h.Create)
		router.POST("/tasks/bulk-update", h.BulkUpdate)
		router.DELETE("/tasks/:id", h.Delete)
	})

	It("creates a task for the caller", func() {
		svc.createFn = func(_ context.Context, userID int64, params service.CreateTaskParams) (*model.Task, error) {
			Expect(userID).To(Equal(testUserID))
			Expect(*params.GoalID).To(Equal(int64(7)))
			return &model.Task{ID: 1, UserID: userID, Title: params.Title, Status: model.TaskStatusTodo}, nil
		}

		w := doJSON(router, http.MethodPost, "/tasks", map[string]any{"title": "Ship it", "goal_id": "7"})

		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(decode(w)["id"]).To(Equal("1"))
	})

	It("returns validation details with 400", func() {
		svc.createFn = func(context.Context, int64, service.CreateTaskParams) (*model.Task, error) {
			return nil, &service.ValidationError{Message: "validation failed", Details: map[string]string{"priority": "must be one of low, medium, high, urgent"}}
		}

		w := doJSON(router, http.MethodPost, "/tasks", map[string]any{"title": "Ship it", "priority": "asap"})

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(decode(w)["details"]).To(HaveKey("priority"))
	})

	It("rejects a malformed goal filter", func() {
		Expect(doJSON(router, http.MethodGet, "/tasks?goal_id=abc", nil).Code).To(Equal(http.StatusBadRequest))
	})

	It("passes list filters through", func() {
		svc.listFn = func(_ context.Context, _ int64, params service.ListTasksParams) ([]model.Task, error) {
			Expect(params.Status).To(Equal("todo"))
			Expect(*params.GoalID).To(Equal(int64(5)))
			return []model.Task{{ID: 3}}, nil
		}

		w := doJSON(router, http.MethodGet, "/tasks?status=todo&goal_id=5", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
	})

	Describe("BulkUpdate", func() {
		It("returns the updated count", func() {
			svc.bulkUpdateFn = func(_ context.Context, _ int64, params service.BulkUpdateParams) (int, error) {
				Expect(params.TaskIDs).To(Equal([]int64{1, 2}))
				return 2, nil
			}

			w := doJSON(router, http.MethodPost, "/tasks/bulk-update", map[string]any{"task_ids": []string{"1", "2"}, "status": "completed"})

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode(w)["updated"]).To(BeEquivalentTo(2))
		})

		It("rejects malformed ids", func() {
			w := doJSON(router, http.MethodPost, "/tasks/bulk-update", map[string]any{"task_ids": []string{"1", "x"}, "status": "completed"})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(w)["details"]).To(HaveKey("task_ids"))
		})
	})

	Describe("Delete", func() {
		It("returns 204", func() {
			Expect(doJSON(router, http.MethodDelete, "/tasks/9", nil).Code).To(Equal(http.StatusNoContent))
		})

		It("maps a missing task to 404", func() {
			svc.deleteFn = func(context.Context, int64, int64) error { return service.ErrTaskNotFound }

			Expect(doJSON(router, http.MethodDelete, "/tasks/9", nil).Code).To(Equal(http.StatusNotFound))
		})

		It("rejects a malformed id", func() {
			Expect(doJSON(router, http.MethodDelete, "/tasks/nine", nil).Code).To(Equal(http.StatusBadRequest))
		})

		It("hides internal errors", func() {
			svc.deleteFn = func(context.Context, int64, int64) error { return errors.New("connection reset") }

			w := doJSON(router, http.MethodDelete, "/tasks/9", nil)

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(w.Body.String()).NotTo(ContainSubstring("connection reset"))
		})
	})
})
