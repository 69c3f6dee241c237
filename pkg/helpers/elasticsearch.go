package helpers

import (
	"crypto/tls"
	"net"
	"net/http"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
)

// NewESClient builds the client backing the league search index. Timeouts are
// kept short so search degrades quickly instead of stalling requests when the
// cluster is unreachable.
func NewESClient(addrs []string, username, password string) (*elasticsearch.Client, error) {
	cfg := elasticsearch.Config{
		Addresses: addrs,
		Username:  username,
		Password:  password,
		Transport: &http.Transport{
			MaxIdleConnsPerHost:   8,
			ResponseHeaderTimeout: 4 * time.Second,
			TLSClientConfig:       &tls.Config{MinVersion: tls.VersionTLS12},
			DialContext:           (&net.Dialer{Timeout: 4 * time.Second}).DialContext,
		},
	}
	return elasticsearch.NewClient(cfg)
}
