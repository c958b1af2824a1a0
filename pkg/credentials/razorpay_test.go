package credentials

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/razorpay/razorpay-workflow-node/pkg/models"
	"github.com/razorpay/razorpay-workflow-node/pkg/testutil"
)

func TestRazorpayAPI_Schema(t *testing.T) {
	credentialType := NewRazorpayAPI()

	if credentialType.Name() != "razorpayApi" {
		t.Errorf("Unexpected name: %s", credentialType.Name())
	}

	schema := credentialType.Schema()
	if schema == nil {
		t.Fatal("Expected a schema")
	}

	for _, field := range []string{"environment", "keyId", "keySecret"} {
		if _, ok := schema.Properties[field]; !ok {
			t.Errorf("Expected %s property", field)
		}
	}

	if len(schema.Required) != 2 {
		t.Errorf("Expected keyId and keySecret to be required, got: %v", schema.Required)
	}
}

func TestRazorpayAPI_Authenticate(t *testing.T) {
	credentialType := NewRazorpayAPI()

	req, _ := http.NewRequest(http.MethodGet, "https://api.razorpay.com/v1/orders", nil)

	if err := credentialType.Authenticate(testutil.TestCredentials(), req); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	keyID, keySecret, ok := req.BasicAuth()
	if !ok {
		t.Fatal("Expected basic auth to be set")
	}

	if keyID != "rzp_test_1DP5mmOlF5G5ag" || keySecret != "thisissupposedtobesecret" {
		t.Errorf("Unexpected key pair: %s / %s", keyID, keySecret)
	}
}

func TestRazorpayAPI_Authenticate_MissingFields(t *testing.T) {
	credentialType := NewRazorpayAPI()

	req, _ := http.NewRequest(http.MethodGet, "https://api.razorpay.com/v1/orders", nil)

	err := credentialType.Authenticate(&models.Credentials{KeyID: "rzp_test_x"}, req)
	if err == nil {
		t.Fatal("Expected error for missing key secret")
	}
}

func TestRazorpayAPI_Test(t *testing.T) {
	var requestURI string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestURI = r.URL.RequestURI()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"entity": "collection", "count": 0, "items": []}`))
	}))
	defer server.Close()

	credentialType := NewRazorpayAPI()

	err := credentialType.Test(context.Background(), testutil.NewRewriteDoer(server.URL), testutil.TestCredentials())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if requestURI != "/v1/orders?count=1" {
		t.Errorf("Unexpected request URI: %s", requestURI)
	}
}

func TestRazorpayAPI_Test_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"code": "BAD_REQUEST_ERROR", "description": "Authentication failed"}}`))
	}))
	defer server.Close()

	credentialType := NewRazorpayAPI()

	err := credentialType.Test(context.Background(), testutil.NewRewriteDoer(server.URL), testutil.TestCredentials())
	if err == nil {
		t.Fatal("Expected error for 401 response")
	}

	if !strings.Contains(err.Error(), "Unauthorized: Invalid API credentials") {
		t.Errorf("Unexpected error: %v", err)
	}
}
