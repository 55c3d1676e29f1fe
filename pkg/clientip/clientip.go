package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// DefaultHeaders are the proxy headers consulted, in order, before RemoteAddr.
var DefaultHeaders = []string{"CF-Connecting-IP", "X-Forwarded-For", "X-Real-IP"}

// FromRequest returns the client IP of r. The first valid address found in
// headers wins (for comma separated headers the left-most valid entry),
// then RemoteAddr. Returns "" when nothing parses.
func FromRequest(r *http.Request, headers ...string) string {
	for _, name := range headers {
		for candidate := range strings.SplitSeq(r.Header.Get(name), ",") {
			if ip := parseIP(candidate); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// parseIP normalizes an address, unmapping IPv4-in-IPv6 and dropping zones.
func parseIP(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}
