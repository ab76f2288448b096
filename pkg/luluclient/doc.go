// Package luluclient is the entry point for building a Lulu print API client
// that implements the lulu.Client interface.
//
// The lulu package holds the resource interfaces and wire types; luluclient
// wires them to an HTTP transport configured from a lulu.Config. Most
// applications import luluclient to build a client and then reach the
// resource clients through Projects(), Products(), Orders(), Shipping(),
// Account() and Print().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/retznutz/lulu-client/pkg/lulu"
//	  "github.com/retznutz/lulu-client/pkg/luluclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Sandbox with defaults.
//	  cli, err := luluclient.NewSandbox(ctx, "my-api-key")
//	  if err != nil { log.Fatal(err) }
//	  defer cli.Close()
//
//	  // Or a full configuration.
//	  config := lulu.NewConfig("my-api-key")
//	  config.Production = true
//	  config.Logger = lulu.NewLogrusLogger(nil)
//	  config.Debug = true
//
//	  cli, err = luluclient.New(ctx, config)
//	  if err != nil { log.Fatal(err) }
//
//	  products, err := cli.Products().List(ctx, lulu.NewProductListOptions())
//	  if err != nil { log.Fatal(err) }
//	  _ = products
//	}
//
// # Errors
//
// Every failure is an error value. lulu.Classify sorts it into validation,
// transport, deserialization or cancellation. A *lulu.ResponseError carries
// the status code and raw body of a failed response.
//
// # Retries
//
// Config.MaxRetryAttempts is not consulted: each call sends exactly one
// request. Pass WithRetry to opt in to retries of 429 and 5xx responses.
//
// # Helpers
//
// NewSandbox, NewProduction and NewWithBaseURL wrap New with the matching
// configuration.
package luluclient
