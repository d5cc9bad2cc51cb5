// Package domain contains the entities served by the news API (topics,
// articles, comments and users) together with the parameter rules that
// govern how they can be listed and modified. It has no knowledge of HTTP
// or SQL.
package domain
