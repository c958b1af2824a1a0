package node_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/razorpay/razorpay-workflow-node/pkg/host"
	"github.com/razorpay/razorpay-workflow-node/pkg/log"
	"github.com/razorpay/razorpay-workflow-node/pkg/models"
	"github.com/razorpay/razorpay-workflow-node/pkg/node"
	"github.com/razorpay/razorpay-workflow-node/pkg/operations"
	"github.com/razorpay/razorpay-workflow-node/pkg/registry"
	"github.com/razorpay/razorpay-workflow-node/pkg/testutil"
)

func newTestRegistry() *registry.Registry {
	reg := registry.NewRegistry(log.WithModule("test"))
	reg.RegisterDefaultOperations()

	return reg
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"entity": "collection", "count": 0, "items": []}`))
	}))
	t.Cleanup(server.Close)

	return server
}

func TestRazorpayNode_Execute(t *testing.T) {
	server := newTestServer(t)

	ectx := host.NewContext(
		[]map[string]any{
			{"operation": "fetchAllOrders"},
			{"operation": "fetchAllRefunds"},
		},
		host.WithCredentials(operations.CredentialName, testutil.TestCredentials()),
		host.WithDoer(testutil.NewRewriteDoer(server.URL)),
	)

	razorpayNode := node.NewRazorpayNode("test-node", newTestRegistry())

	items, err := razorpayNode.Execute(context.Background(), ectx)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got: %d", len(items))
	}

	for i, item := range items {
		if item.Status != models.ItemStatusSuccess {
			t.Errorf("Expected success status for item %d, got: %s", i, item.Status)
		}

		if item.PairedItem != i {
			t.Errorf("Expected paired item %d, got: %d", i, item.PairedItem)
		}

		if item.JSON["entity"] != "collection" {
			t.Errorf("Unexpected item payload: %v", item.JSON)
		}
	}
}

func TestRazorpayNode_Execute_AbortsOnFailure(t *testing.T) {
	server := newTestServer(t)

	ectx := host.NewContext(
		[]map[string]any{
			{"operation": "unknownOperation"},
			{"operation": "fetchAllOrders"},
		},
		host.WithCredentials(operations.CredentialName, testutil.TestCredentials()),
		host.WithDoer(testutil.NewRewriteDoer(server.URL)),
	)

	razorpayNode := node.NewRazorpayNode("test-node", newTestRegistry())

	_, err := razorpayNode.Execute(context.Background(), ectx)
	if err == nil {
		t.Fatal("Expected error for unregistered operation")
	}

	if !strings.HasPrefix(err.Error(), "item 0:") {
		t.Errorf("Expected the failing item index in the error, got: %v", err)
	}
}

func TestRazorpayNode_Execute_ContinueOnFail(t *testing.T) {
	server := newTestServer(t)

	ectx := host.NewContext(
		[]map[string]any{
			{"operation": "unknownOperation"},
			{"operation": "fetchAllOrders"},
		},
		host.WithCredentials(operations.CredentialName, testutil.TestCredentials()),
		host.WithDoer(testutil.NewRewriteDoer(server.URL)),
		host.WithContinueOnFail(true),
	)

	razorpayNode := node.NewRazorpayNode("test-node", newTestRegistry())

	items, err := razorpayNode.Execute(context.Background(), ectx)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got: %d", len(items))
	}

	if items[0].Status != models.ItemStatusError {
		t.Errorf("Expected error status for item 0, got: %s", items[0].Status)
	}

	if items[0].JSON["operation"] != "unknownOperation" {
		t.Errorf("Expected the operation id in the error item, got: %v", items[0].JSON["operation"])
	}

	if items[0].JSON["error"] == "" || items[0].JSON["error"] == nil {
		t.Error("Expected an error message in the error item")
	}

	if items[0].JSON["timestamp"] == "" || items[0].JSON["timestamp"] == nil {
		t.Error("Expected a timestamp in the error item")
	}

	if items[1].Status != models.ItemStatusSuccess {
		t.Errorf("Expected success status for item 1, got: %s", items[1].Status)
	}
}

func TestRazorpayNode_Execute_MissingOperation(t *testing.T) {
	ectx := host.NewContext(
		[]map[string]any{{}},
		host.WithCredentials(operations.CredentialName, testutil.TestCredentials()),
	)

	razorpayNode := node.NewRazorpayNode("test-node", newTestRegistry())

	_, err := razorpayNode.Execute(context.Background(), ectx)
	if err == nil {
		t.Fatal("Expected error for missing operation parameter")
	}

	if !strings.Contains(err.Error(), "missing 'operation' parameter") {
		t.Errorf("Unexpected error: %v", err)
	}
}
