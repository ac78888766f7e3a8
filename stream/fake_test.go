package stream

import (
	"time"

	"github.com/eclipse/paho.mqtt.golang"
)

// fakeToken completes at once, or never when stalled, like a QoS 1 publish
// stored while the client reconnects.
type fakeToken struct {
	err     error
	stalled bool
}

func (t *fakeToken) Error() error { return t.err }

func (t *fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	if !t.stalled {
		close(ch)
	}
	return ch
}

func (t *fakeToken) Wait() bool {
	<-t.Done()
	return true
}

func (t *fakeToken) WaitTimeout(d time.Duration) bool {
	select {
	case <-t.Done():
		return true
	case <-time.After(d):
		return false
	}
}

type publication struct {
	topic   string
	qos     byte
	payload []byte
}

type fakeClient struct {
	published []publication
	handlers  map[string]mqtt.MessageHandler
	err       error
	stalled   bool
}

func newFakeClient() *fakeClient {
	return &fakeClient{handlers: make(map[string]mqtt.MessageHandler)}
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.published = append(c.published, publication{topic: topic, qos: qos, payload: payload.([]byte)})
	return &fakeToken{err: c.err, stalled: c.stalled}
}

func (c *fakeClient) Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token {
	c.handlers[topic] = callback
	return &fakeToken{err: c.err}
}

type fakeMessage struct {
	topic   string
	payload []byte
}

func (m *fakeMessage) Duplicate() bool   { return false }
func (m *fakeMessage) Qos() byte         { return 0 }
func (m *fakeMessage) Retained() bool    { return false }
func (m *fakeMessage) Topic() string     { return m.topic }
func (m *fakeMessage) MessageID() uint16 { return 1 }
func (m *fakeMessage) Payload() []byte   { return m.payload }
func (m *fakeMessage) Ack()              {}
