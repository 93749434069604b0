// Package amqp carries net check requests and reports over RabbitMQ.
//
// A check request is published to CheckKey with the raw net document as
// the body and the document format as the content type. The worker
// replies on ReportKey with the report encoded as JSON, or on ErrorKey
// with the load error, echoing the request's correlation id either way.
package amqp

import (
	"bytes"
	"context"
	"encoding/json"
	"github.com/jt05610/pnet"
	"github.com/jt05610/pnet/env"
	"github.com/jt05610/pnet/pnml"
	"github.com/jt05610/pnet/yaml"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	CheckKey  = "net.check"
	ReportKey = "net.report"
	ErrorKey  = "net.error"
)

// CheckService converts check deliveries into nets and reports into
// replies. Unknown content types are read as PNML.
type CheckService struct {
	services map[string]pnet.Service
}

func NewCheckService() *CheckService {
	p := &pnml.Service{}
	y := &yaml.Service{}
	return &CheckService{
		services: map[string]pnet.Service{
			"application/xml":    p,
			"text/xml":           p,
			"application/x-yaml": y,
			"text/yaml":          y,
		},
	}
}

func (a *CheckService) service(contentType string) pnet.Service {
	if srv, found := a.services[contentType]; found {
		return srv
	}
	return a.services["application/xml"]
}

func (a *CheckService) Load(ctx context.Context, data amqp.Delivery) (*pnet.Net, error) {
	return a.service(data.ContentType).Load(ctx, bytes.NewReader(data.Body))
}

// Check loads the delivered document and checks it.
func (a *CheckService) Check(ctx context.Context, data amqp.Delivery) (*pnet.Report, error) {
	n, err := a.Load(ctx, data)
	if err != nil {
		return nil, err
	}
	return n.Check(), nil
}

func (a *CheckService) Flush(_ context.Context, data amqp.Delivery, report *pnet.Report) (amqp.Publishing, error) {
	b, err := json.Marshal(report)
	if err != nil {
		var zero amqp.Publishing
		return zero, err
	}
	return amqp.Publishing{
		Body:          b,
		ContentType:   "application/json",
		CorrelationId: data.CorrelationId,
		DeliveryMode:  amqp.Persistent,
		Headers: amqp.Table{
			"x-net-id":   report.NetID,
			"x-net-name": report.Net,
		},
	}, nil
}

// Error builds the reply for a document that could not be loaded.
func (a *CheckService) Error(data amqp.Delivery, err error) amqp.Publishing {
	return amqp.Publishing{
		Body:          []byte(err.Error()),
		ContentType:   "text/plain",
		CorrelationId: data.CorrelationId,
	}
}

type Connection struct {
	*amqp.Connection
	*amqp.Channel
}

func (c *Connection) Close() error {
	if c.Channel != nil {
		err := c.Channel.Close()
		if err != nil {
			return err
		}
	}
	return c.Connection.Close()
}

func Dial(environ *env.Environment) (*Connection, error) {
	conn, err := amqp.Dial(environ.URI)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	return &Connection{conn, ch}, nil
}
