package common

// AuthorizationHeader is the HTTP header carrying the bearer access token
// on authenticated requests.
const AuthorizationHeader = "Authorization"

// BearerPrefix prefixes the access token in the Authorization header.
const BearerPrefix = "Bearer "

// RequestIDHeader carries a client-generated request id for traceability.
const RequestIDHeader = "X-Request-ID"
