// internal/models/errors.go
package models

// ValidationKind identifies a class of rejected input. The string values are
// part of the API contract and are returned verbatim as error codes.
type ValidationKind string

const (
	KindInvalidTier                   ValidationKind = "InvalidTier"
	KindMissingSupplierForTier        ValidationKind = "MissingSupplierForTier"
	KindAmbiguousSupplier             ValidationKind = "AmbiguousSupplier"
	KindSelfSupplier                  ValidationKind = "SelfSupplier"
	KindAmbiguousSeller               ValidationKind = "AmbiguousSeller"
	KindAmbiguousBuyer                ValidationKind = "AmbiguousBuyer"
	KindSellerNotAuthorizedForProduct ValidationKind = "SellerNotAuthorizedForProduct"
	KindInvalidAmount                 ValidationKind = "InvalidAmount"
	KindInvalidDebt                   ValidationKind = "InvalidDebt"
)

// Sentinels for errors.Is. Any ValidationError matches the sentinel of the
// same kind regardless of its message.
var (
	ErrInvalidTier                   = &ValidationError{Kind: KindInvalidTier}
	ErrMissingSupplierForTier        = &ValidationError{Kind: KindMissingSupplierForTier}
	ErrAmbiguousSupplier             = &ValidationError{Kind: KindAmbiguousSupplier}
	ErrSelfSupplier                  = &ValidationError{Kind: KindSelfSupplier}
	ErrAmbiguousSeller               = &ValidationError{Kind: KindAmbiguousSeller}
	ErrAmbiguousBuyer                = &ValidationError{Kind: KindAmbiguousBuyer}
	ErrSellerNotAuthorizedForProduct = &ValidationError{Kind: KindSellerNotAuthorizedForProduct}
	ErrInvalidAmount                 = &ValidationError{Kind: KindInvalidAmount}
	ErrInvalidDebt                   = &ValidationError{Kind: KindInvalidDebt}
)

// ValidationError is a caller input error raised before anything is persisted.
type ValidationError struct {
	Kind    ValidationKind
	Message string
}

func newValidationError(kind ValidationKind, message string) *ValidationError {
	return &ValidationError{Kind: kind, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return string(e.Kind) + ": " + e.Message
}

func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// MessageKey is the i18n key holding the human-readable text for the kind.
func (k ValidationKind) MessageKey() string {
	switch k {
	case KindInvalidTier:
		return "hierarchy.invalid_tier"
	case KindMissingSupplierForTier:
		return "hierarchy.missing_supplier"
	case KindAmbiguousSupplier:
		return "hierarchy.ambiguous_supplier"
	case KindSelfSupplier:
		return "hierarchy.self_supplier"
	case KindAmbiguousSeller:
		return "transaction.ambiguous_seller"
	case KindAmbiguousBuyer:
		return "transaction.ambiguous_buyer"
	case KindSellerNotAuthorizedForProduct:
		return "transaction.seller_not_authorized"
	case KindInvalidAmount:
		return "transaction.invalid_amount"
	case KindInvalidDebt:
		return "transaction.invalid_debt"
	default:
		return "validation.invalid"
	}
}
