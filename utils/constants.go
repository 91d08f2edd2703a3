// File: utils/constants.go
package utils

// SessionCookie carries the draft session id for browser clients.
const SessionCookie = "anndann_session"

// SessionCookieMaxAge matches the default draft TTL, in seconds.
const SessionCookieMaxAge = 2 * 60 * 60

// RequestIDHeader echoes the request id assigned by the request logger.
const RequestIDHeader = "X-Request-ID"
