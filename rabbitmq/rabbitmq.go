package rabbitmq

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/contahub/contahub.go/db/models"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/ziflex/lecho/v3"
)

const (
	defaultHeartbeat = 10 * time.Second
	defaultLocale    = "en_US"

	contentTypeJSON = "application/json"
)

// Client publishes recorded ledger transactions to a fanout exchange.
// Consumers (notification services, analytics) bind their own queues.
type Client struct {
	uri      string
	exchange string
	logger   *lecho.Logger

	// mu guards conn and channel, which the reconnection loop swaps out
	// while publishers may be using them
	mu              sync.Mutex
	conn            *amqp.Connection
	channel         *amqp.Channel
	notifyCloseChan chan *amqp.Error
}

type TransactionEvent struct {
	TransactionID int64     `json:"transaction_id"`
	AccountID     int64     `json:"account_id"`
	Amount        string    `json:"amount"`
	Type          string    `json:"type"`
	Transfer      bool      `json:"transfer"`
	CreatedAt     time.Time `json:"created_at"`
}

func Dial(uri, exchange string, logger *lecho.Logger) (*Client, error) {
	client := &Client{
		uri:      uri,
		exchange: exchange,
		logger:   logger,
	}
	if err := client.connect(); err != nil {
		return nil, err
	}

	go client.reconnectionLoop()

	return client, nil
}

func (c *Client) connect() error {
	conn, err := amqp.DialConfig(c.uri, amqp.Config{
		Heartbeat: defaultHeartbeat,
		Locale:    defaultLocale,
		Dial:      amqp.DefaultDial(time.Second * 3),
	})
	if err != nil {
		return err
	}

	channel, err := conn.Channel()
	if err != nil {
		return err
	}

	if err := channel.ExchangeDeclare(c.exchange, "fanout", true, false, false, false, nil); err != nil {
		return err
	}

	notifyCloseChan := make(chan *amqp.Error)
	conn.NotifyClose(notifyCloseChan)

	c.mu.Lock()
	c.conn = conn
	c.channel = channel
	c.notifyCloseChan = notifyCloseChan
	c.mu.Unlock()

	return nil
}

func (c *Client) reconnectionLoop() {
	for amqpError := range c.notifyCloseChan {
		c.logger.Error(amqpError)

		exponentialBackoff := backoff.NewExponentialBackOff()
		exponentialBackoff.MaxInterval = time.Second * 10
		exponentialBackoff.MaxElapsedTime = time.Minute

		c.logger.Info("amqp: trying to reconnect...")
		if err := backoff.Retry(c.connect, exponentialBackoff); err != nil {
			c.logger.Errorf("amqp: could not reconnect: %v", err)
			return
		}
		c.logger.Info("amqp: successfully reconnected")
	}
}

func (c *Client) PublishTransaction(ctx context.Context, transaction *models.Transaction) error {
	payload, err := json.Marshal(TransactionEvent{
		TransactionID: transaction.ID,
		AccountID:     transaction.AccountID,
		Amount:        transaction.Amount.StringFixed(2),
		Type:          transaction.Type,
		Transfer:      transaction.Transfer,
		CreatedAt:     transaction.CreatedAt,
	})
	if err != nil {
		return err
	}

	c.mu.Lock()
	channel := c.channel
	c.mu.Unlock()

	return channel.PublishWithContext(ctx, c.exchange, "", false, false, amqp.Publishing{
		ContentType: contentTypeJSON,
		Body:        payload,
	})
}

func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.Close()
}
