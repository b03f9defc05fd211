// Package messaging receives dataset-refresh notifications from the ETL
// pipeline over kafka or MQTT, selected by config. The dashboard only
// consumes; the pipeline is the producer.
package messaging

import (
	"fmt"
	"sync/atomic"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"econdash/config"
)

type Client struct {
	cfg       *config.MessagingConfig
	mqttConn  mqtt.Client
	connected atomic.Bool
}

func NewClient(cfg *config.MessagingConfig) *Client {
	return &Client{cfg: cfg}
}

func (c *Client) Backend() string { return c.cfg.Backend }

// Connect establishes the transport. Kafka readers dial lazily, so a
// kafka backend is considered connected once brokers are configured.
func (c *Client) Connect() error {
	switch c.cfg.Backend {
	case "":
		return nil
	case "kafka":
		if len(c.cfg.Brokers) == 0 {
			return fmt.Errorf("kafka backend requires brokers")
		}
		c.connected.Store(true)
		return nil
	case "mqtt":
		if c.cfg.BrokerURL == "" {
			return fmt.Errorf("mqtt backend requires broker_url")
		}
		opts := mqtt.NewClientOptions().
			AddBroker(c.cfg.BrokerURL).
			SetClientID(c.cfg.ClientID).
			SetAutoReconnect(true).
			SetConnectTimeout(5 * time.Second)
		opts.OnConnect = func(mqtt.Client) { c.connected.Store(true) }
		opts.OnConnectionLost = func(mqtt.Client, error) { c.connected.Store(false) }
		conn := mqtt.NewClient(opts)
		if token := conn.Connect(); token.Wait() && token.Error() != nil {
			return fmt.Errorf("mqtt connect: %w", token.Error())
		}
		c.mqttConn = conn
		c.connected.Store(true)
		return nil
	default:
		return fmt.Errorf("unsupported messaging backend: %s", c.cfg.Backend)
	}
}

func (c *Client) IsConnected() bool {
	return c.connected.Load()
}

func (c *Client) Close() {
	if c.mqttConn != nil {
		c.mqttConn.Disconnect(250)
	}
	c.connected.Store(false)
}
