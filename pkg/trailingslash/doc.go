// Package trailingslash redirects requests to a canonical path with or
// without a trailing slash.
package trailingslash
