/*
Package apiclient is a Go client for the restbook API.

# Client vs Session

Client covers the public surface: sign-in, refresh, health checks and the
person endpoints.

	client := apiclient.New("http://localhost:8080")

	people, err := client.ListPersons(ctx)

	session, err := client.Authenticate(ctx, "admin", password)

Session carries a token pair and covers the bearer protected endpoints.
When the server answers 401 the session refreshes the pair once and
retries the request:

	book, err := session.CreateBook(ctx, apiclient.Book{Author: "Knuth", Title: "TAOCP"})

	detail, err := session.UploadFile(ctx, apiclient.FileUpload{Name: "report.pdf", Data: pdf})

	data, contentType, err := session.DownloadFile(ctx, detail.DocumentName)

	err = session.Revoke(ctx)

# Errors

Non-2xx responses are returned as *APIError and match the predefined
values with errors.Is:

	if errors.Is(err, apiclient.ErrNotFound) {
		// ...
	}
*/
package apiclient
