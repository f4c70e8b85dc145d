/*
Package middleware provides the HTTP wrappers shared by every route.

Routes are chained as authenticate, authorize, handle:

	authn := middleware.Authenticator(v, log)
	mux.Handle("GET /v1/client/all", authn(middleware.RequireAdmin(h.GetClients)))

Authenticator answers 401 {"error":"Missing token"} when no bearer token is
sent and 400 {"error":"Invalid token"} when it does not validate. The Require
helpers answer 403 before the handler runs.

WithLogging, RequestID and Recover wrap the whole mux.
*/
package middleware
