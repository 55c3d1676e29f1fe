// Package requestid tags every request with a correlation id that is
// returned in the X-Request-ID header, stored in the request context and
// added to log records through LoggerExtractor.
package requestid
