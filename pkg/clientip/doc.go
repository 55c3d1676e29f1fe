// Package clientip resolves the address of the client behind reverse proxies.
//
//	p.Pipe(clientip.Middleware("X-Forwarded-For"), -70)
//	ip := clientip.FromContext(r.Context())
//
// Headers are only as trustworthy as the proxy that sets them. Restrict the
// header list when the service is reachable without a proxy in front.
package clientip
