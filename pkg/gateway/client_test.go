package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/razorpay/razorpay-workflow-node/pkg/models"
)

func testCredentials() *models.Credentials {
	return &models.Credentials{
		Environment: models.EnvironmentTest,
		KeyID:       "rzp_test_1DP5mmOlF5G5ag",
		KeySecret:   "thisissupposedtobesecret",
	}
}

func TestClient_Get_SetsAuthAndHeaders(t *testing.T) {
	var captured *http.Request

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Clone(r.Context())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"entity": "collection", "count": 0, "items": []}`))
	}))
	defer server.Close()

	client := NewClient(testCredentials(), WithBaseURL(server.URL))

	result, err := client.Get(context.Background(), "/v1/orders?count=1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result["entity"] != "collection" {
		t.Errorf("Expected collection entity, got: %v", result["entity"])
	}

	keyID, keySecret, ok := captured.BasicAuth()
	if !ok || keyID != "rzp_test_1DP5mmOlF5G5ag" || keySecret != "thisissupposedtobesecret" {
		t.Errorf("Expected basic auth with the key pair, got: %s / %s", keyID, keySecret)
	}

	if captured.Header.Get("Content-Type") != "application/json" {
		t.Errorf("Expected JSON content type, got: %s", captured.Header.Get("Content-Type"))
	}

	if !strings.HasPrefix(captured.Header.Get("User-Agent"), "razorpay-workflow-node/") {
		t.Errorf("Unexpected user agent: %s", captured.Header.Get("User-Agent"))
	}

	if captured.URL.RequestURI() != "/v1/orders?count=1" {
		t.Errorf("Unexpected request URI: %s", captured.URL.RequestURI())
	}
}

func TestClient_Post_SendsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got: %s", r.Method)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "plink_ExjpAUN3gVHrPJ", "status": "created"}`))
	}))
	defer server.Close()

	client := NewClient(testCredentials(), WithBaseURL(server.URL))

	result, err := client.Post(context.Background(), "/v1/payment_links", map[string]any{
		"amount":   100000,
		"currency": "INR",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result["id"] != "plink_ExjpAUN3gVHrPJ" {
		t.Errorf("Unexpected id: %v", result["id"])
	}
}

func TestClient_DecodesGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": {"code": "BAD_REQUEST_ERROR", "description": "amount must be at least 100"}}`))
	}))
	defer server.Close()

	client := NewClient(testCredentials(), WithBaseURL(server.URL))

	_, err := client.Get(context.Background(), "/v1/orders")
	if err == nil {
		t.Fatal("Expected error for 400 response")
	}

	gatewayErr, ok := AsGatewayError(err)
	if !ok {
		t.Fatalf("Expected a gateway error, got: %T", err)
	}

	if gatewayErr.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400, got: %d", gatewayErr.StatusCode)
	}

	if gatewayErr.Code != "BAD_REQUEST_ERROR" {
		t.Errorf("Unexpected code: %s", gatewayErr.Code)
	}

	if gatewayErr.Description != "amount must be at least 100" {
		t.Errorf("Unexpected description: %s", gatewayErr.Description)
	}
}

func TestClient_NonJSONErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable"))
	}))
	defer server.Close()

	client := NewClient(testCredentials(), WithBaseURL(server.URL))

	_, err := client.Get(context.Background(), "/v1/orders")

	gatewayErr, ok := AsGatewayError(err)
	if !ok {
		t.Fatalf("Expected a gateway error, got: %T", err)
	}

	if gatewayErr.Description != "upstream unavailable" {
		t.Errorf("Unexpected description: %s", gatewayErr.Description)
	}
}

func TestClient_MissingCredentials(t *testing.T) {
	client := NewClient(&models.Credentials{})

	_, err := client.Get(context.Background(), "/v1/orders")
	if err == nil {
		t.Fatal("Expected error for empty credentials")
	}

	if !strings.Contains(err.Error(), "missing credentials") {
		t.Errorf("Unexpected error: %v", err)
	}
}
