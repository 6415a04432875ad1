// Package showdex provides an embedded, in-process client for the showdex
// catalog search engine: load a catalog once, then run ranked searches,
// facet filtering, and typeahead suggestions without the HTTP server.
//
// # Basic usage
//
//	client, _ := showdex.New(showdex.WithCatalogFile("catalog.json"))
//	results, _ := client.Search("slash commands").Do()
//
// # Faceted search
//
//	results, _ := client.Search("deploy").
//	    InCategory("workflow").
//	    WithStatus("beta").
//	    SortBy(showdex.SortName).
//	    Do()
//
// # Typeahead
//
//	suggestions := client.Suggest("sl", history)
//
// Localized fields resolve against the client's active language and fall
// back to the catalog's fallback language. Use SetLanguage to switch; the
// engine's internal result cache is invalidated automatically.
package showdex
