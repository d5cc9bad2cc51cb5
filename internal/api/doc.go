// Package api is the HTTP boundary of the news API. It parses paths,
// query strings and bodies, calls the services and renders their results
// as JSON envelopes. Every failure is classified with store.KindOf and
// written as a {"msg": ...} body with the matching status code.
package api
