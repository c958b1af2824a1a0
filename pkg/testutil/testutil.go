// Package testutil provides helpers shared by the package tests.
package testutil

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/razorpay/razorpay-workflow-node/pkg/gateway"
	"github.com/razorpay/razorpay-workflow-node/pkg/models"
)

// TestCredentials returns a credential pair accepted by the client.
func TestCredentials() *models.Credentials {
	return &models.Credentials{
		Environment: models.EnvironmentTest,
		KeyID:       "rzp_test_1DP5mmOlF5G5ag",
		KeySecret:   "thisissupposedtobesecret",
	}
}

// RewriteDoer redirects requests aimed at the production gateway host to a
// local test server, preserving path, query, headers, and body.
type RewriteDoer struct {
	Target string
	Client *http.Client
}

// NewRewriteDoer builds a RewriteDoer pointed at target, typically an
// httptest server URL.
func NewRewriteDoer(target string) *RewriteDoer {
	return &RewriteDoer{
		Target: target,
		Client: &http.Client{},
	}
}

func (d *RewriteDoer) Do(req *http.Request) (*http.Response, error) {
	requestURL := req.URL.String()

	if strings.HasPrefix(requestURL, gateway.DefaultBaseURL) {
		rewritten, err := url.Parse(d.Target + strings.TrimPrefix(requestURL, gateway.DefaultBaseURL))
		if err != nil {
			return nil, err
		}

		req.URL = rewritten
		req.Host = rewritten.Host
	}

	return d.Client.Do(req)
}
