package gateway

import (
	"fmt"
	"runtime"
)

const (
	packageVersion = "0.1.0"
	libraryName    = "razorpay-workflow-node"
	integration    = "workflow"
)

// UserAgent builds the outbound User-Agent string with library and
// runtime information, e.g.
// "razorpay-workflow-node/0.1.0 (workflow; go1.24.4; linux/amd64)".
func UserAgent() string {
	return fmt.Sprintf("%s/%s (%s; %s; %s/%s)",
		libraryName, packageVersion, integration,
		runtime.Version(), runtime.GOOS, runtime.GOARCH,
	)
}
