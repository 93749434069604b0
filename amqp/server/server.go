package server

import (
	"context"
	amqp2 "github.com/jt05610/pnet/amqp"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"log"
)

func failOnError(err error, msg string) {
	if err != nil {
		log.Fatalf("%s: %s", msg, err)
	}
}

// Server checks every net published to the check queue and publishes
// the report.
type Server struct {
	ch       *amqp.Channel
	q        *amqp.Queue
	check    *amqp2.CheckService
	exchange string
	logger   *zap.Logger
}

func New(ch *amqp.Channel, logger *zap.Logger, exchange string) *Server {
	err := ch.ExchangeDeclare(
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
	err = ch.QueueBind(
		q.Name,         // queue name
		amqp2.CheckKey, // routing key
		exchange,       // exchange
		false,
		nil)
	failOnError(err, "Failed to bind a queue")
	return &Server{
		ch:       ch,
		q:        &q,
		check:    amqp2.NewCheckService(),
		exchange: exchange,
		logger:   logger,
	}
}

func (s *Server) publishError(ctx context.Context, d amqp.Delivery, err error) {
	pubErr := s.ch.PublishWithContext(ctx, s.exchange, amqp2.ErrorKey, false, false, s.check.Error(d, err))
	if pubErr != nil {
		s.logger.Error("Failed to publish error", zap.Error(pubErr))
	}
}

func (s *Server) handle(ctx context.Context, d amqp.Delivery) {
	report, err := s.check.Check(ctx, d)
	if err != nil {
		s.logger.Error("Failed to check net", zap.Error(err))
		s.publishError(ctx, d, err)
		return
	}
	resp, err := s.check.Flush(ctx, d, report)
	if err != nil {
		s.logger.Error("Failed to flush report", zap.Error(err))
		return
	}
	err = s.ch.PublishWithContext(ctx, s.exchange, amqp2.ReportKey, false, false, resp)
	if err != nil {
		s.logger.Error("Failed to publish report", zap.Error(err))
		return
	}
	s.logger.Info("Checked net",
		zap.String("net", report.Net),
		zap.Int("errors", len(report.Errors)),
		zap.Int("warnings", len(report.Warnings)),
	)
}

func (s *Server) Listen(ctx context.Context) {
	msgs, err := s.ch.Consume(
		s.q.Name, // queue
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
				s.logger.Info("Closing connection")
				return
			case d := <-msgs:
				s.handle(ctx, d)
			}
		}
	}()
	<-ctx.Done()
}
