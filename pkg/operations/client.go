package operations

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/razorpay/razorpay-workflow-node/pkg/gateway"
	"github.com/razorpay/razorpay-workflow-node/pkg/protocol"
)

// newClient resolves the razorpayApi credential and binds a gateway
// client to the host's transport. Credentials are read fresh per
// invocation, never cached.
func newClient(ctx context.Context, ectx protocol.ExecutionContext, logger *slog.Logger) (*gateway.Client, error) {
	creds, err := ectx.Credentials(ctx, CredentialName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q credentials: %w", CredentialName, err)
	}

	return gateway.NewClient(creds,
		gateway.WithDoer(ectx.HTTPDoer()),
		gateway.WithLogger(logger),
	), nil
}
