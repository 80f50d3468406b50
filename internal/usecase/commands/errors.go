package commands

import "controlpay/internal/pkg/errs"

// Sentinel errors of the payment core. Handlers map these onto HTTP statuses;
// everything unmarked is an internal fault and surfaces generically.
var (
	// Validation (client-correctable input)
	ErrValidation     = errs.New("validation error")
	ErrInvalidAmount  = errs.New("amount must be positive")
	ErrBatchTooLarge  = errs.New("batch size exceeds limit")
	ErrAmountMismatch = errs.New("amount mismatch")

	// Not found
	ErrControlNumberNotFound = errs.New("control number not found")
	ErrPaymentNotFound       = errs.New("payment not found")
	ErrEntitlementNotFound   = errs.New("entitlement not found")

	// Conflict (atomic precondition failed)
	ErrAlreadyRedeemed  = errs.New("control number already used")
	ErrNotActive        = errs.New("control number not active")
	ErrDuplicateOrder   = errs.New("duplicate order id")
	ErrGenerationFailed = errs.New("control number generation exhausted")

	// Expired (time-boxed entity past validity)
	ErrControlNumberExpired = errs.New("control number expired")

	// Provider (external rail failed or timed out; outcome unknown)
	ErrProviderTimeout  = errs.New("provider timed out")
	ErrProviderRejected = errs.New("provider rejected the request")
	ErrProviderNetwork  = errs.New("provider network failure")

	// Internal
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)
