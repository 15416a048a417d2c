package mypublisher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/shopfront/lib/mypubsub"
	"github.com/MarcGrol/shopfront/lib/myqueue"
	"github.com/MarcGrol/shopfront/lib/mytime"
)

type testEvent struct {
	UID   string
	Total int
}

func (e testEvent) GetEventTypeName() string {
	return "test.happened"
}

func (e testEvent) GetAggregateName() string {
	return e.UID
}

type capturingQueue struct {
	tasks []myqueue.Task
}

func (q *capturingQueue) Enqueue(c context.Context, task myqueue.Task) error {
	q.tasks = append(q.tasks, task)
	return nil
}

func TestTransactionalPublisher(t *testing.T) {

	t.Run("Publish stores the envelope and enqueues a trigger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c, sut, _, queue, _ := setup(t, ctrl)

		err := sut.Publish(c, "test", testEvent{UID: "e-1", Total: 42})
		assert.NoError(t, err)

		assert.Equal(t, 1, len(queue.tasks))
		assert.Contains(t, queue.tasks[0].WebhookURLPath, "/pubsub/test/")

		envelopes, err := sut.outbox.List(c)
		assert.NoError(t, err)
		assert.Equal(t, 1, len(envelopes))
		assert.Equal(t, "test.happened", envelopes[0].EventTypeName)
		assert.False(t, envelopes[0].Published)
	})

	t.Run("Republishing the same event is idempotent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c, sut, _, _, _ := setup(t, ctrl)

		err := sut.Publish(c, "test", testEvent{UID: "e-1", Total: 42})
		assert.NoError(t, err)
		err = sut.Publish(c, "test", testEvent{UID: "e-1", Total: 42})
		assert.NoError(t, err)

		// Same checksum-uid, so the second publish overwrote the first
		envelopes, err := sut.outbox.List(c)
		assert.NoError(t, err)
		assert.Equal(t, 1, len(envelopes))
	})

	t.Run("Trigger pushes pending envelopes and marks them published", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c, sut, pubsub, queue, router := setup(t, ctrl)

		err := sut.Publish(c, "test", testEvent{UID: "e-1", Total: 42})
		assert.NoError(t, err)

		pubsub.EXPECT().Publish(gomock.Any(), "test", gomock.Any()).Return(nil)

		request, err := http.NewRequest(http.MethodPut, queue.tasks[0].WebhookURLPath, nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		assert.Equal(t, 200, response.Code)

		envelopes, err := sut.outbox.List(c)
		assert.NoError(t, err)
		assert.Equal(t, 1, len(envelopes))
		assert.True(t, envelopes[0].Published)
	})
}

func setup(t *testing.T, ctrl *gomock.Controller) (context.Context, *transactionalPublisher, *mypubsub.MockPubSub, *capturingQueue, *mux.Router) {
	c := context.TODO()
	pubsub := mypubsub.NewMockPubSub(ctrl)
	queue := &capturingQueue{}
	nower := mytime.NewMockNower(ctrl)
	nower.EXPECT().Now().Return(mytime.ExampleTime).AnyTimes()

	sut, cleanup, err := New(c, pubsub, queue, nower)
	assert.NoError(t, err)
	t.Cleanup(cleanup)

	router := mux.NewRouter()
	sut.RegisterEndpoints(c, router)

	return c, sut, pubsub, queue, router
}
