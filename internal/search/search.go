// Package search maps a search engine name and a query to the engine's
// results URL.
package search

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Engine identifies a supported search engine.
type Engine string

const (
	Baidu  Engine = "baidu"
	Bing   Engine = "bing"
	Google Engine = "google"
	Sogou  Engine = "sogou"
)

// DefaultEngine is used until the user picks another one.
const DefaultEngine = Baidu

var (
	ErrUnknownEngine = errors.New("unknown search engine")
	ErrEmptyQuery    = errors.New("search query is empty")
)

var engineURLs = map[Engine]string{
	Baidu:  "https://www.baidu.com/s?wd=",
	Bing:   "https://www.bing.com/search?q=",
	Google: "https://www.google.com/search?q=",
	Sogou:  "https://www.sogou.com/web?query=",
}

// Engines returns every supported engine in display order.
func Engines() []Engine {
	return []Engine{Baidu, Bing, Google, Sogou}
}

// Parse converts s into an [Engine].
func Parse(s string) (Engine, error) {
	engine := Engine(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := engineURLs[engine]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownEngine, s)
	}
	return engine, nil
}

// URL returns the results page of engine for query. A blank query is
// rejected with [ErrEmptyQuery].
func URL(engine Engine, query string) (string, error) {
	prefix, ok := engineURLs[engine]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownEngine, engine)
	}
	if strings.TrimSpace(query) == "" {
		return "", ErrEmptyQuery
	}
	return prefix + url.QueryEscape(query), nil
}
