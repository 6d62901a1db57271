package utils

import (
	"github.com/go-resty/resty/v2"
)

// UserAgent identifies VisiFind to third-party endpoints.
const UserAgent = "VisiFind (+https://github.com/Theworld7/VisiFind)"

// HTTPClient is the outbound HTTP client. It embeds *resty.Client so every
// resty method is available directly.
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().SetContext(ctx).Get("https://bing.biturl.top/")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that sends [UserAgent] with
// every request.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New().SetHeader("User-Agent", UserAgent)}
}
