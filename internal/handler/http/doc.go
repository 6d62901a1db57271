// Package http implements the local JSON API of VisiFind.
//
// It exposes route wiring, request handlers and middleware. The API is a thin
// layer over the domain services: bookmarks, background, search engine, food
// library, intake records and backups. Request tracing and access logging are
// handled here before requests are delegated to the service layer.
package http
