// Package api implements the HTTP client for the feedbackdesk backend.
//
// The Client interface is the seam between the service layer and the wire:
// services depend on it, tests substitute fakes for it, and RESTClient is
// the production implementation. RESTClient owns the authentication
// contract: bearer-token attachment, the single refresh-and-retry on a 401,
// and eviction of the credential store when refresh fails.
package api
