/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-logr/zapr"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/unikorn-cloud/clientcheck/pkg/fake"
)

type options struct {
	listenAddress   string
	readTimeout     time.Duration
	shutdownTimeout time.Duration
	development     bool
}

func (o *options) addFlags(f *pflag.FlagSet) {
	f.StringVar(&o.listenAddress, "listen-address", ":8080", "Address to serve the fake client service on.")
	f.DurationVar(&o.readTimeout, "read-timeout", 10*time.Second, "Maximum time to read a request.")
	f.DurationVar(&o.shutdownTimeout, "shutdown-timeout", 5*time.Second, "Maximum time to drain requests on shutdown.")
	f.BoolVar(&o.development, "development", true, "Use human readable development logging.")
}

func newLogger(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

func run(o *options) error {
	zl, err := newLogger(o.development)
	if err != nil {
		return err
	}

	defer func() {
		_ = zl.Sync()
	}()

	logger := zapr.NewLogger(zl).WithName("client-fake")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:              o.listenAddress,
		Handler:           fake.New(logger),
		ReadHeaderTimeout: o.readTimeout,
		ReadTimeout:       o.readTimeout,
	}

	errs := make(chan error, 1)

	go func() {
		logger.Info("service starting", "address", o.listenAddress)

		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	logger.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), o.shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func main() {
	var o options

	o.addFlags(pflag.CommandLine)

	pflag.Parse()

	if err := run(&o); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
