package catalogevents

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/shopfront/lib/myevents"
)

type recordingService struct {
	loaded   []CatalogLoaded
	selected []ProductSelected
}

func (s *recordingService) Subscribe(c context.Context) error {
	return nil
}

func (s *recordingService) OnCatalogLoaded(c context.Context, topic string, event CatalogLoaded) error {
	s.loaded = append(s.loaded, event)
	return nil
}

func (s *recordingService) OnProductSelected(c context.Context, topic string, event ProductSelected) error {
	s.selected = append(s.selected, event)
	return nil
}

func TestDispatchEvent(t *testing.T) {
	c := context.TODO()

	t.Run("Dispatches product selection", func(t *testing.T) {
		service := &recordingService{}

		err := DispatchEvent(c, pushBody(t, ProductSelected{ProductUID: "42"}), service)

		assert.NoError(t, err)
		assert.Equal(t, []ProductSelected{{ProductUID: "42"}}, service.selected)
		assert.Empty(t, service.loaded)
	})

	t.Run("Dispatches catalog loaded", func(t *testing.T) {
		service := &recordingService{}

		err := DispatchEvent(c, pushBody(t, CatalogLoaded{Total: 10, Count: 10}), service)

		assert.NoError(t, err)
		assert.Equal(t, []CatalogLoaded{{Total: 10, Count: 10}}, service.loaded)
	})

	t.Run("Unknown event type", func(t *testing.T) {
		body := pushBodyRaw(t, "catalog.bogus", `{}`)

		err := DispatchEvent(c, body, &recordingService{})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "catalog.bogus")
	})
}

func pushBody(t *testing.T, event myevents.Event) *bytes.Buffer {
	payload, err := json.Marshal(event)
	assert.NoError(t, err)

	return pushBodyRaw(t, event.GetEventTypeName(), string(payload))
}

func pushBodyRaw(t *testing.T, eventTypeName string, payload string) *bytes.Buffer {
	envelope, err := json.Marshal(myevents.EventEnvelope{
		Topic:         TopicName,
		EventTypeName: eventTypeName,
		EventPayload:  payload,
	})
	assert.NoError(t, err)

	body, err := json.Marshal(myevents.PushRequest{
		Message: myevents.PushMessage{Data: envelope},
	})
	assert.NoError(t, err)

	return bytes.NewBuffer(body)
}
