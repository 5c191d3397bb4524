// Package victorops provides a native Go client for the VictorOps
// (Splunk On-Call) public REST API.
//
// # Features
//
//   - Service-based architecture covering incidents, users, teams,
//     on-call schedules, escalation policies, routing keys, and contact
//     methods
//   - Typed errors for precise error handling
//   - Functional options for flexible configuration
//   - Raw request/response metadata returned with every call
//
// # Quick Start
//
//	client, err := victorops.NewClient(
//	    victorops.WithBaseURL("https://api.victorops.com"),
//	    victorops.WithCredentials(os.Getenv("VO_API_ID"), os.Getenv("VO_API_KEY")),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	incidents, details, err := client.Incidents.List(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d incidents (HTTP %d)\n", len(incidents.Incidents), details.StatusCode)
//
// # Request Metadata
//
// Every operation returns a *RequestDetails alongside the typed payload,
// carrying the HTTP status code and the raw request and response bodies.
// This makes it possible to log or archive the exact wire traffic of any
// call without re-issuing it.
//
// # Error Handling
//
// The package uses typed errors that can be inspected with errors.As:
//
//	user, _, err := client.Users.Get(ctx, "someuser")
//	if err != nil {
//	    var notFound *victorops.NotFoundError
//	    if errors.As(err, &notFound) {
//	        // Handle not found
//	    }
//	}
//
// Transport failures, JSON failures, and API failures are distinct
// types; API-derived errors all unwrap to *APIError.
package victorops
