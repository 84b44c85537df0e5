/*
Package opsdk provides a client SDK for the opsdesk dashboard service.

# Overview

The package is organized around two main types:

  - SDKClient: Provides unauthenticated operations and creates authenticated sessions
  - Session: Provides authenticated operations with automatic token refresh

Create an SDKClient to interact with public endpoints and sign in:

	client := opsdk.NewSDKClient("https://opsdesk.example.com")

	// Check service health
	health, err := client.GetLiveness(ctx)

	// Sign in with a remember token requested
	session, err := client.Login(ctx, "sales@prakarsa.example", "password", true)

Use a Session for authenticated operations. Sessions automatically handle
access token expiration by redeeming the remember token:

	customers, err := session.ListCustomers(ctx)
	po, err := session.CreatePurchaseOrder(ctx, req)
	count, err := session.GetUnreadCount(ctx)

# Remember tokens

When Login is called with remember=true the server issues a long-lived
remember token alongside the short-lived access token. The Session redeems
it transparently whenever the access token expires. Each redemption rotates
the token, so callers persisting it across restarts must re-read it with
RememberToken() after any Session call:

	session, err := client.AuthenticateWithRememberToken(ctx, storedToken)
	// ... use session ...
	store(session.RememberToken()) // rotated value

# Error Handling

Error responses are returned as *APIError with the machine-readable code
and HTTP status preserved:

	_, err := session.CreateCustomer(ctx, req)
	var apiErr *opsdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == opsdk.ErrorCodeAlreadyExists {
		// duplicate customer name
	}

# Thread Safety

Sessions are safe for concurrent use. Multiple goroutines can share a
single Session and make authenticated requests concurrently.
*/
package opsdk
