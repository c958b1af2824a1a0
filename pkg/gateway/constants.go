// Package gateway implements the Razorpay REST client shared by every
// operation: Basic-auth request construction, response decoding, the
// client-side validators, and the display formatters.
package gateway

// DefaultBaseURL is the fixed Razorpay API host. Tests override it
// through a client option.
const DefaultBaseURL = "https://api.razorpay.com"

// API paths, relative to the base URL.
const (
	OrdersPath       = "/v1/orders"
	PaymentLinksPath = "/v1/payment_links"
	RefundsPath      = "/v1/refunds"
	PaymentsPath     = "/v1/payments"
	SettlementsPath  = "/v1/settlements"
	InvoicesPath     = "/v1/invoices"
	DisputesPath     = "/v1/disputes"
)

// Documentation URLs attached to api_info blocks.
const (
	DocCreatePaymentLink = "https://razorpay.com/docs/api/payments/payment-links/create-standard/"
	DocCreateRefund      = "https://razorpay.com/docs/api/refunds/create-normal/"
	DocFetchAllRefunds   = "https://razorpay.com/docs/api/refunds/fetch-all/"
)

// Validation limits.
const (
	MinAmount            = 100
	MaxReceiptLength     = 40
	MaxReferenceIDLength = 40
	MaxDescriptionLength = 2048
	MaxNoteKeyLength     = 256
	MaxNoteValueLength   = 256
	MaxNotesCount        = 15
)

// Settlement listing accepts Unix timestamps in this window only;
// anything outside is rejected before the request is made.
const (
	MinSettlementTimestamp = 946684800
	MaxSettlementTimestamp = 4765046400
)

// Pagination bounds shared by all fetch-all operations.
const (
	MinCount     = 1
	MaxCount     = 100
	DefaultCount = 10
)

// Fixed validator messages.
const (
	MsgMinAmount          = "Amount must be at least ₹1.00 (100 paise)"
	MsgMaxReceiptLength   = "Receipt must be maximum 40 characters"
	MsgMaxReferenceID     = "Reference ID must be maximum 40 characters"
	MsgMaxDescription     = "Description must be maximum 2048 characters"
	MsgMaxNoteLength      = "Note key and value must be maximum 256 characters each"
	MsgMaxNotesCount      = "Maximum 15 key-value pairs allowed in notes"
	MsgInvalidCallbackURL = "Callback URL must be a valid URL format"
)

// MsgUnauthorized is returned for every HTTP 401, regardless of the
// response body.
const MsgUnauthorized = "Unauthorized: Invalid API credentials. Please check your Razorpay API key and secret."

// Defaults surfaced in operation schemas.
const (
	DefaultCurrency              = "INR"
	DefaultPaymentLinkAmount     = 100000
	DefaultRefundAmount          = 10000
	DefaultFirstMinPartialAmount = 100
	DefaultCallbackMethod        = "get"
)

// Currencies supported by the create payment link operation.
var Currencies = []string{"AED", "AUD", "CAD", "EUR", "GBP", "INR", "MYR", "SGD", "THB", "USD"}
