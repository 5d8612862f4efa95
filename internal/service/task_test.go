package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"solosuccess.app/api/common/id"
	"solosuccess.app/api/internal/model"
	"solosuccess.app/api/internal/service"
)

var _ = Describe("TaskService", func() {
	var (
		ctx    context.Context
		tasks  *mockTaskStore
		goals  *mockGoalStore
		tx     *fakeTxRunner
		svc    service.TaskService
		userID int64
	)

	BeforeEach(func() {
		Expect(id.Init(1)).To(Succeed())
		ctx = context.Background()
		userID = 42
		tasks = newMockTaskStore()
		goals = newMockGoalStore()
		tx = &fakeTxRunner{stores: &fakeStores{tasks: tasks, goals: goals}}
		svc = service.NewTaskService(tx, tasks, goals)
	})

	Describe("Create", func() {
		It("defaults status and priority and normalizes tags", func() {
			task, err := svc.Create(ctx, userID, service.CreateTaskParams{
				Title: "  Write launch post ",
				Tags:  []string{"Marketing", "marketing", " "},
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(task.Title).To(Equal("Write launch post"))
			Expect(task.Status).To(Equal(model.TaskStatusTodo))
			Expect(task.Priority).To(Equal(model.TaskPriorityMedium))
			Expect(task.Tags).To(Equal([]string{"marketing"}))
			Expect(task.CompletedAt).To(BeNil())
			Expect(tasks.created).To(HaveLen(1))
		})

		It("stamps completed_at when created as completed", func() {
			task, err := svc.Create(ctx, userID, service.CreateTaskParams{Title: "Done already", Status: "completed"})

			Expect(err).NotTo(HaveOccurred())
			Expect(task.CompletedAt).NotTo(BeNil())
		})

		It("reports every invalid field", func() {
			_, err := svc.Create(ctx, userID, service.CreateTaskParams{Status: "someday", Priority: "critical"})

			var verr *service.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
			Expect(verr.Details).To(HaveKey("title"))
			Expect(verr.Details).To(HaveKey("status"))
			Expect(verr.Details).To(HaveKey("priority"))
			Expect(tx.calls).To(BeZero())
		})

		It("rejects a goal owned by someone else", func() {
			goals.goals[7] = &model.Goal{ID: 7, UserID: 99}
			goalID := int64(7)

			_, err := svc.Create(ctx, userID, service.CreateTaskParams{Title: "Task", GoalID: &goalID})

			var verr *service.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
			Expect(verr.Details).To(HaveKey("goal_id"))
			Expect(tasks.created).To(BeEmpty())
		})

		It("recomputes the goal's progress", func() {
			goals.goals[7] = &model.Goal{ID: 7, UserID: userID}
			goals.counts[7] = model.GoalTaskCounts{Total: 4, Completed: 1}
			goalID := int64(7)

			_, err := svc.Create(ctx, userID, service.CreateTaskParams{Title: "Task", GoalID: &goalID})

			Expect(err).NotTo(HaveOccurred())
			Expect(goals.progress).To(HaveKeyWithValue(int64(7), 25))
		})
	})

	Describe("Update", func() {
		BeforeEach(func() {
			goalID := int64(7)
			goals.goals[7] = &model.Goal{ID: 7, UserID: userID}
			goals.goals[8] = &model.Goal{ID: 8, UserID: userID}
			goals.counts[7] = model.GoalTaskCounts{Total: 2, Completed: 0}
			goals.counts[8] = model.GoalTaskCounts{Total: 1, Completed: 1}
			tasks.tasks[1] = &model.Task{ID: 1, UserID: userID, GoalID: &goalID, Title: "Task", Status: model.TaskStatusTodo}
		})

		It("returns ErrTaskNotFound for another user's task", func() {
			title := "x"
			_, err := svc.Update(ctx, 99, 1, service.UpdateTaskParams{Title: &title})
			Expect(err).To(MatchError(service.ErrTaskNotFound))
		})

		It("sets and clears completed_at with the status", func() {
			completed := "completed"
			task, err := svc.Update(ctx, userID, 1, service.UpdateTaskParams{Status: &completed})
			Expect(err).NotTo(HaveOccurred())
			Expect(task.CompletedAt).NotTo(BeNil())

			todo := "todo"
			task, err = svc.Update(ctx, userID, 1, service.UpdateTaskParams{Status: &todo})
			Expect(err).NotTo(HaveOccurred())
			Expect(task.CompletedAt).To(BeNil())
		})

		It("recomputes both goals when a task moves", func() {
			newGoal := int64(8)
			_, err := svc.Update(ctx, userID, 1, service.UpdateTaskParams{GoalID: &newGoal})

			Expect(err).NotTo(HaveOccurred())
			Expect(goals.progress).To(HaveKey(int64(7)))
			Expect(goals.progress).To(HaveKeyWithValue(int64(8), 100))
		})

		It("skips the recompute when neither goal nor status changes", func() {
			title := "Renamed"
			_, err := svc.Update(ctx, userID, 1, service.UpdateTaskParams{Title: &title})

			Expect(err).NotTo(HaveOccurred())
			Expect(goals.progress).To(BeEmpty())
		})

		It("detaches the task from its goal", func() {
			task, err := svc.Update(ctx, userID, 1, service.UpdateTaskParams{ClearGoal: true})

			Expect(err).NotTo(HaveOccurred())
			Expect(task.GoalID).To(BeNil())
			Expect(goals.progress).To(HaveKey(int64(7)))
		})
	})

	Describe("Delete", func() {
		It("recomputes the goal after removing its task", func() {
			goalID := int64(7)
			goals.counts[7] = model.GoalTaskCounts{Total: 1, Completed: 1}
			tasks.tasks[1] = &model.Task{ID: 1, UserID: userID, GoalID: &goalID}

			Expect(svc.Delete(ctx, userID, 1)).To(Succeed())
			Expect(tasks.tasks).NotTo(HaveKey(int64(1)))
			Expect(goals.progress).To(HaveKeyWithValue(int64(7), 100))
		})

		It("returns ErrTaskNotFound for unknown tasks", func() {
			Expect(svc.Delete(ctx, userID, 404)).To(MatchError(service.ErrTaskNotFound))
		})
	})

	Describe("BulkUpdate", func() {
		var gotIDs []int64

		BeforeEach(func() {
			gotIDs = nil
			tasks.bulkUpdateFn = func(_ context.Context, _ int64, ids []int64, status *model.TaskStatus, _ *model.TaskPriority) (int, []int64, error) {
				gotIDs = ids
				return len(ids), []int64{7}, nil
			}
		})

		It("rejects an empty id list", func() {
			status := "completed"
			_, err := svc.BulkUpdate(ctx, userID, service.BulkUpdateParams{Status: &status})

			var verr *service.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
			Expect(verr.Details).To(HaveKey("task_ids"))
		})

		It("rejects more than the maximum ids", func() {
			ids := make([]int64, service.MaxBulkUpdate+1)
			for i := range ids {
				ids[i] = int64(i + 1)
			}
			status := "completed"

			_, err := svc.BulkUpdate(ctx, userID, service.BulkUpdateParams{TaskIDs: ids, Status: &status})

			var verr *service.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
		})

		It("requires a status or a priority", func() {
			_, err := svc.BulkUpdate(ctx, userID, service.BulkUpdateParams{TaskIDs: []int64{1}})

			var verr *service.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
		})

		It("dedupes ids and recomputes touched goals on status changes", func() {
			status := "completed"
			goals.counts[7] = model.GoalTaskCounts{Total: 2, Completed: 2}

			n, err := svc.BulkUpdate(ctx, userID, service.BulkUpdateParams{TaskIDs: []int64{3, 1, 3}, Status: &status})

			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(2))
			Expect(gotIDs).To(Equal([]int64{1, 3}))
			Expect(goals.progress).To(HaveKeyWithValue(int64(7), 100))
		})

		It("leaves progress alone for priority-only changes", func() {
			priority := "urgent"

			_, err := svc.BulkUpdate(ctx, userID, service.BulkUpdateParams{TaskIDs: []int64{1}, Priority: &priority})

			Expect(err).NotTo(HaveOccurred())
			Expect(goals.progress).To(BeEmpty())
		})
	})
})
