package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/segmentio/kafka-go"
)

// RefreshHandler reacts to dataset-refresh envelopes. The engine
// implements it by busting the load cache for the announced path.
type RefreshHandler interface {
	HandleRefresh(env *Envelope, req Refresh)
}

type Consumer struct {
	client  *Client
	topic   string
	handler RefreshHandler
	reader  *kafka.Reader
	cancel  context.CancelFunc
}

func NewConsumer(client *Client, topic string, handler RefreshHandler) *Consumer {
	return &Consumer{client: client, topic: topic, handler: handler}
}

// Start subscribes to the refresh topic. A transport that never came up
// is reported as an error, not a panic, so the dashboard keeps serving
// when the broker is down.
func (c *Consumer) Start() error {
	if c.client.cfg.Backend == "" {
		return nil
	}
	if !c.client.IsConnected() {
		return fmt.Errorf("messaging %s transport not connected, refresh consumer disabled", c.client.cfg.Backend)
	}
	switch c.client.cfg.Backend {
	case "kafka":
		c.reader = kafka.NewReader(kafka.ReaderConfig{
			Brokers: c.client.cfg.Brokers,
			GroupID: c.client.cfg.GroupID,
			Topic:   c.topic,
		})
		ctx, cancel := context.WithCancel(context.Background())
		c.cancel = cancel
		go c.readLoop(ctx)
		return nil
	case "mqtt":
		token := c.client.mqttConn.Subscribe(c.topic, 1, func(_ mqtt.Client, msg mqtt.Message) {
			c.dispatch(msg.Payload())
		})
		token.Wait()
		return token.Error()
	default:
		return nil
	}
}

func (c *Consumer) Stop() {
	if c.cancel != nil {
		c.cancel()
	}
	if c.reader != nil {
		c.reader.Close()
	}
	if c.client.cfg.Backend == "mqtt" && c.client.mqttConn != nil {
		c.client.mqttConn.Unsubscribe(c.topic)
	}
}

func (c *Consumer) readLoop(ctx context.Context) {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("messaging: read %s: %v", c.topic, err)
			continue
		}
		c.dispatch(msg.Value)
	}
}

func (c *Consumer) dispatch(data []byte) {
	env, err := Decode(data)
	if err != nil {
		log.Printf("messaging: bad envelope on %s: %v", c.topic, err)
		return
	}
	switch env.Type {
	case "refresh":
		var req Refresh
		if err := json.Unmarshal(env.Payload, &req); err != nil {
			log.Printf("messaging: bad refresh payload: %v", err)
			return
		}
		c.handler.HandleRefresh(env, req)
	default:
		log.Printf("messaging: ignoring message type %q", env.Type)
	}
}
