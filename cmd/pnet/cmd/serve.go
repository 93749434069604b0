/*
Copyright © 2024 Jonathan Taylor <jonrtaylor12@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/

package cmd

import (
	"context"
	"github.com/jt05610/pnet/amqp"
	"github.com/jt05610/pnet/amqp/server"
	"github.com/jt05610/pnet/env"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"os"
	"os/signal"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the net check worker",
	Long: `Run a worker which checks every net published to the check queue
and publishes the report.`,
	Run: func(cmd *cobra.Command, args []string) {
		logger, err := zap.NewProduction()
		if err != nil {
			panic(err)
		}
		environ := env.LoadEnv(logger)
		conn, err := amqp.Dial(environ)
		failOnError(err, "Failed to connect to RabbitMQ")
		defer func() {
			_ = conn.Close()
		}()
		srv := server.New(conn.Channel, logger, environ.Exchange)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt)
		go func() {
			<-sigint
			cancel()
		}()
		logger.Info("Listening for nets to check", zap.String("exchange", environ.Exchange))
		srv.Listen(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
