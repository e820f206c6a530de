// Package core contains the business logic of the DIP answer digest.
// It is independent of the command line and of concrete infrastructure.
//
// The core package is organized into several sub-packages:
//
// - domain: list and detail payloads, normalized records, the date window
// - dip: endpoint URLs and headers of the DIP API
// - pagination: cursor and links.next pagination with stall detection
// - filter: answer selection and record normalization
// - texts: per-record text download with failure isolation
// - digest: markdown and HTML rendering
// - pipeline: composition of the steps above for one run
// - errors: typed errors separating fatal from per-record failures
// - interfaces: contracts for external dependencies (cache, HTTP, logger, pacer, storage)
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	    Pacer:      myPacer,      // implements interfaces.Pacer
//	    TextStore:  myStore,      // implements interfaces.TextStore
//	}
//
//	client := dip.NewClient(dip.Settings{BaseURL: base, APIKey: key}, deps)
//	p := pipeline.NewPipeline(client, deps, config.NewPipelineConfig())
//	result, err := p.Run(ctx, domain.NewDateWindow(end, 7))
package core
