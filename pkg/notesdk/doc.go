/*
Package notesdk is a Go client for the notes service.

A Client covers the endpoints that need no token: login, invitation lookup
and acceptance, and health probes. Logging in, or accepting an invitation,
returns a Session which carries the bearer token and exposes everything
else:

	client := notesdk.NewClient("http://localhost:8080")

	sess, err := client.Login(ctx, notesdk.LoginRequest{
		Email:    "admin@acme.test",
		Password: "password",
	})

	note, err := sess.CreateNote(ctx, notesdk.NoteRequest{Title: "Hello"})
	page, err := sess.ListNotes(ctx, notesdk.ListNotesParams{Search: "hello"})

Errors returned by the server are *APIError values carrying the HTTP status
and the message from the response envelope:

	var apiErr *notesdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusForbidden {
		// plan limit or missing permission
	}

The request and response types in this package are also what the server
encodes, so they double as the wire documentation.
*/
package notesdk
