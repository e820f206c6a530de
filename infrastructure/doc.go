// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: in-process cache on patrickmn/go-cache
// - http/standard: net/http JSON client mapping failures to typed errors
// - logger/structured: logrus logger with optional lumberjack file rotation
// - pacing: fixed delay and token bucket request pacing
// - storage/local: atomic flat-file writes
//
// # HTTP Client
//
// The client performs a single GET per call; there are no retries:
//
//	client := standard.NewStandardHTTPClient(90 * time.Second)
//	var page domain.ListPage
//	err := client.GetJSON(ctx, url, headers, &page)
//
// # Logger
//
//	logger := structured.NewStructuredLogger(structured.Options{Level: "debug"})
//	logger.Info("Fetched list page", map[string]interface{}{
//	    "page":      1,
//	    "documents": 100,
//	})
package infrastructure
