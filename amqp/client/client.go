package client

import (
	"context"
	"encoding/json"
	"github.com/jt05610/pnet"
	amqp2 "github.com/jt05610/pnet/amqp"
	amqp "github.com/rabbitmq/amqp091-go"
	"log"
)

func failOnError(err error, msg string) {
	if err != nil {
		log.Fatalf("%s: %s", msg, err)
	}
}

// Request is one net document to check.
type Request struct {
	ContentType string
	Body        []byte
}

// Result is the worker's reply to a Request. Err carries the load
// failure when the document could not be read, otherwise Report holds
// the check outcome.
type Result struct {
	CorrelationId string
	Report        *pnet.Report
	Err           string
}

type Controller struct {
	ch       *amqp.Channel
	dataCh   chan *Result
	q        *amqp.Queue
	exchange string
}

func (a *Controller) Load(_ context.Context, data amqp.Delivery) (*Result, error) {
	res := &Result{CorrelationId: data.CorrelationId}
	if data.RoutingKey == amqp2.ErrorKey {
		res.Err = string(data.Body)
		return res, nil
	}
	res.Report = &pnet.Report{}
	if err := json.Unmarshal(data.Body, res.Report); err != nil {
		return nil, err
	}
	return res, nil
}

func (a *Controller) Flush(_ context.Context, req *Request) (amqp.Publishing, error) {
	contentType := req.ContentType
	if contentType == "" {
		contentType = "application/xml"
	}
	return amqp.Publishing{
		Body:          req.Body,
		ContentType:   contentType,
		CorrelationId: pnet.ID(),
		DeliveryMode:  amqp.Persistent,
	}, nil
}

func NewController(ch *amqp.Channel, exchange string) *Controller {
	err := ch.Confirm(false)
	failOnError(err, "Failed to set confirm mode")
	err = ch.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		false,    // durable
		false,    // delete when unused
		false,    // exclusive
		false,    // no-wait
		nil,      // arguments
	)
	failOnError(err, "Failed to declare an exchange")
	q, err := ch.QueueDeclare(
		"",    // name
		false, // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	failOnError(err, "Failed to declare a queue")
	for _, key := range []string{amqp2.ReportKey, amqp2.ErrorKey} {
		err = ch.QueueBind(
			q.Name,   // queue name
			key,      // routing key
			exchange, // exchange
			false,
			nil)
		failOnError(err, "Failed to bind a queue")
	}
	return &Controller{
		ch:       ch,
		q:        &q,
		exchange: exchange,
	}
}

// Send publishes the request and returns its correlation id.
func (a *Controller) Send(ctx context.Context, req *Request) (string, error) {
	p, err := a.Flush(ctx, req)
	if err != nil {
		return "", err
	}
	return p.CorrelationId, a.ch.PublishWithContext(
		ctx,
		a.exchange,     // exchange
		amqp2.CheckKey, // routing key
		false,          // mandatory
		false,          // immediate
		p,
	)
}

// Check sends the request and waits for its reply. Listen must be
// running, and the context bounds the wait.
func (a *Controller) Check(ctx context.Context, req *Request) (*Result, error) {
	id, err := a.Send(ctx, req)
	if err != nil {
		return nil, err
	}
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case res := <-a.dataCh:
			if res.CorrelationId != id {
				continue
			}
			return res, nil
		}
	}
}

func (a *Controller) Data() <-chan *Result {
	return a.dataCh
}

func (a *Controller) Listen(ctx context.Context) {
	a.dataCh = make(chan *Result)
	msgs, err := a.ch.Consume(
		a.q.Name, // queue
		"",       // consumer
		true,     // auto-ack
		false,    // exclusive
		false,    // no-local
		false,    // no-wait
		nil,      // args
	)
	failOnError(err, "Failed to register a consumer")

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case d := <-msgs:
				data, err := a.Load(ctx, d)
				if err != nil {
					log.Println(err)
					continue
				}
				a.dataCh <- data
			}
		}
	}()
}
