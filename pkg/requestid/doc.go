// Package requestid attaches a correlation ID to every HTTP request.
//
// Middleware reuses a well-formed X-Request-ID header sent by the client and
// otherwise generates a UUID. The ID is stored in the request context and
// echoed back in the response header, so a client can quote it when
// reporting a rejected color:
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	log.InfoContext(ctx, "value rejected", requestid.Attr(ctx))
package requestid
