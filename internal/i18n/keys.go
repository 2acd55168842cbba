// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Authentication
	KeyAuthRequired     = "auth.required"
	KeyAuthInvalidToken = "auth.invalid_token"
	KeyAuthTokenExpired = "auth.token_expired"
	KeyAuthInactiveUser = "auth.inactive_user"

	// Access
	KeyAccessDenied      = "access.denied"
	KeyAdminAccessDenied = "admin.access_denied"

	// Parties
	KeyManufacturerNotFound           = "manufacturer.not_found"
	KeyRetailNetworkNotFound          = "retail_network.not_found"
	KeyIndividualEntrepreneurNotFound = "individual_entrepreneur.not_found"

	// Products
	KeyProductNotFound = "product.not_found"

	// Transactions and ledger
	KeyTransactionNotFound = "transaction.not_found"
	KeyDebtCleared         = "debt.cleared"
	KeyReportGenerated     = "report.generated"

	// Users
	KeyUserNotFound = "user.not_found"
	KeyUserExists   = "user.exists"

	// Validation
	KeyValidationInvalid = "validation.invalid"
	KeyReferenceNotFound = "reference.not_found"
	KeyInvalidID         = "validation.invalid_id"
)
