// Package common contains shared constants and sentinel errors used across
// contactdesk components.
package common

// RequestIDHeaderName is the HTTP header carrying the per-request
// correlation id, echoed back on every response.
const RequestIDHeaderName = "X-Request-ID"

// DisplayTimeLayout renders timestamps as YYYY-MM-DD HH:MM for API clients.
const DisplayTimeLayout = "2006-01-02 15:04"
