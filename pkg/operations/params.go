// Package operations implements the Razorpay resource operations: each
// one declares its parameter schema and an executor that validates input,
// issues one authenticated request, and normalizes errors.
package operations

import (
	"strconv"
	"strings"
	"time"

	"github.com/razorpay/razorpay-workflow-node/pkg/gateway"
	"github.com/razorpay/razorpay-workflow-node/pkg/protocol"
)

// Resource identifiers.
const (
	ResourceOrder       = "order"
	ResourcePaymentLink = "paymentLink"
	ResourcePayment     = "payment"
	ResourceRefund      = "refund"
	ResourceSettlement  = "settlement"
	ResourceInvoice     = "invoice"
	ResourceDispute     = "dispute"
)

// CredentialName is the credential entry every operation resolves.
const CredentialName = "razorpayApi"

func stringParam(ectx protocol.ExecutionContext, name string, itemIndex int) string {
	value, _ := ectx.Parameter(name, itemIndex, "").(string)

	return strings.TrimSpace(value)
}

func collectionParam(ectx protocol.ExecutionContext, name string, itemIndex int) map[string]any {
	value, _ := ectx.Parameter(name, itemIndex, nil).(map[string]any)

	return value
}

// intValue coerces the numeric shapes a parameter bag may carry. JSON
// decoding yields float64; hosts may hand over native ints.
func intValue(value any) (int64, bool) {
	switch n := value.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		return int64(n), true
	case string:
		parsed, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0, false
		}

		return parsed, true
	default:
		return 0, false
	}
}

func boolValue(value any) (bool, bool) {
	b, ok := value.(bool)

	return b, ok
}

func optString(opts map[string]any, key string) string {
	value, _ := opts[key].(string)

	return value
}

func optInt(opts map[string]any, key string) (int64, bool) {
	value, ok := opts[key]
	if !ok {
		return 0, false
	}

	return intValue(value)
}

func optBool(opts map[string]any, key string) (bool, bool) {
	value, ok := opts[key]
	if !ok {
		return false, false
	}

	return boolValue(value)
}

// unixFromDate converts a dateTime parameter to Unix seconds. Hosts hand
// dates over as time.Time, RFC3339 strings, or raw second counts.
func unixFromDate(value any) (int64, bool) {
	switch v := value.(type) {
	case time.Time:
		return v.Unix(), true
	case string:
		if v == "" {
			return 0, false
		}

		if ts, err := time.Parse(time.RFC3339, v); err == nil {
			return ts.Unix(), true
		}

		if ts, err := time.Parse("2006-01-02", v); err == nil {
			return ts.Unix(), true
		}

		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n, true
		}

		return 0, false
	default:
		return intValue(value)
	}
}

// notePairsFrom accepts both the nested {"note": [...]} collection shape
// and a bare list of {key, value} objects.
func notePairsFrom(value any) []gateway.NotePair {
	if wrapped, ok := value.(map[string]any); ok {
		value = wrapped["note"]
	}

	list, ok := value.([]any)
	if !ok {
		return nil
	}

	pairs := make([]gateway.NotePair, 0, len(list))

	for _, entry := range list {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}

		pairs = append(pairs, gateway.NotePair{
			Key:   optString(m, "key"),
			Value: optString(m, "value"),
		})
	}

	return pairs
}

// buildQuery joins assembled terms preserving insertion order; repeated
// expand[] keys stay repeated.
func buildQuery(terms []string) string {
	if len(terms) == 0 {
		return ""
	}

	return "?" + strings.Join(terms, "&")
}

func stringList(value any) []string {
	switch list := value.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))

		for _, entry := range list {
			if s, ok := entry.(string); ok {
				out = append(out, s)
			}
		}

		return out
	default:
		return nil
	}
}
