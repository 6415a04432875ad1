// Package sdk provides an HTTP client for a remote showdex server.
//
// For in-process catalogs, use the root showdex package instead; this
// package talks to a running server over its JSON API.
//
//	client := sdk.New("http://localhost:8080")
//	resp, err := client.Search(ctx, "slash commands", &sdk.SearchOptions{
//	    Status: "stable",
//	    Sort:   "name",
//	})
//
// Server-side failures come back as *APIError; the well-known conditions
// also match the package sentinels via errors.Is:
//
//	if errors.Is(err, sdk.ErrNotReady) { ... }
package sdk
