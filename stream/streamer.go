package stream

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/eclipse/paho.mqtt.golang"

	"github.com/matt-g-everett/ledtimeline/registry"
	"github.com/matt-g-everett/ledtimeline/timeline"
)

// publishTimeout bounds how long a publish may hold up the frame loop.
const publishTimeout = 250 * time.Millisecond

// Client is the part of an mqtt.Client used by a Streamer.
type Client interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
	Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token
}

// Event is published when the clock reaches a keyframe carrying an event.
type Event struct {
	Event  string  `json:"event"`
	Target string  `json:"target"`
	Time   int64   `json:"time"`
	Value  float64 `json:"value"`
}

// ControlMessage moves the timeline. Type is one of "seek", "pause" or
// "resume"; Clock is used by "seek".
type ControlMessage struct {
	Type  string `json:"type"`
	Clock int64  `json:"clock"`
}

// Streamer that streams RGB data frames to an ledrx device.
type Streamer struct {
	config     Config
	client     Client
	controller *Controller
	quit       chan struct{}
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, client Client, controller *Controller) *Streamer {
	s := new(Streamer)
	s.config = config
	s.client = client
	s.controller = controller
	s.quit = make(chan struct{})
	return s
}

// SendFrame steps the timeline and sends the rendered frame as binary over
// MQTT to an ledrx device.
func (s *Streamer) SendFrame() error {
	f, err := s.controller.Step()
	if err != nil {
		log.Printf("Step failed: %v", err)
	}

	b, err := f.MarshalBinary()
	if err != nil {
		return err
	}
	token := s.client.Publish(s.config.Mqtt.Topics.Stream, 0, false, b)
	if !token.WaitTimeout(publishTimeout) {
		return errors.New("frame publish timed out")
	}
	return token.Error()
}

// Notify publishes a keyframe event. It is used as the Notifier of a Sheet.
func (s *Streamer) Notify(event string, t timeline.Target, k timeline.Keyframe) {
	b, err := json.Marshal(Event{
		Event:  event,
		Target: registry.Key(t.Identity()),
		Time:   k.Time(),
		Value:  k.Value(),
	})
	if err != nil {
		log.Printf("Event %s: %v", event, err)
		return
	}

	// Notify runs while the controller is locked, so never wait for the
	// broker indefinitely.
	token := s.client.Publish(s.config.Mqtt.Topics.Events, 1, false, b)
	if !token.WaitTimeout(publishTimeout) {
		log.Printf("Event %s: publish timed out", event)
		return
	}
	if token.Error() != nil {
		log.Printf("Event %s: %v", event, token.Error())
	}
}

func (s *Streamer) handleControlMessages(client mqtt.Client, msg mqtt.Message) {
	log.Printf("Received msg %d on %s: %s\n", msg.MessageID(), msg.Topic(), msg.Payload())

	var message ControlMessage
	if err := json.Unmarshal(msg.Payload(), &message); err != nil {
		log.Printf("Bad control message: %v", err)
		return
	}

	switch message.Type {
	case "seek":
		s.controller.SetClock(message.Clock)
	case "pause":
		s.controller.Pause()
	case "resume":
		s.controller.Resume()
	default:
		log.Printf("Unknown control message type %q", message.Type)
	}
}

// Subscribe listens for control messages.
func (s *Streamer) Subscribe() error {
	token := s.client.Subscribe(s.config.Mqtt.Topics.Control, 0, s.handleControlMessages)
	token.Wait()
	return token.Error()
}

// Run causes the Streamer to send Frames continuously until Stop is called.
func (s *Streamer) Run() {
	interval := time.Duration(float64(time.Second) / s.config.FrameRate)
	publishTimer := time.NewTicker(interval)
	defer publishTimer.Stop()
	for {
		select {
		case <-publishTimer.C:
			if err := s.SendFrame(); err != nil {
				log.Printf("Publish failed: %v", err)
			}
		case <-s.quit:
			return
		}
	}
}

// Stop ends Run.
func (s *Streamer) Stop() {
	close(s.quit)
}
