package apperr

import "net/http"

// Code is the numeric result code carried by every response envelope.
type Code int

const (
	CodeSuccess Code = 1

	CodeInternal      Code = 1000
	CodeValidation    Code = 1001
	CodeUnauthorized  Code = 1002
	CodeForbidden     Code = 1003
	CodeAccessDenied  Code = 1004
	CodeNotFound      Code = 1005
	CodeHashingFailed Code = 1006

	CodeUserAlreadyExists Code = 2001
	CodeUserNotFound      Code = 2002
	CodeInvalidPassword   Code = 2003
	CodeResidentNotFound  Code = 2004

	CodeBuildingNotFound  Code = 3001
	CodeApartmentNotFound Code = 3002

	CodeServiceNotFound      Code = 4001
	CodeSubscriptionNotFound Code = 4002
	CodeSubscriptionMismatch Code = 4003

	CodeInvoiceNotFound       Code = 5001
	CodeInvoiceDetailNotFound Code = 5002
	CodePaymentNotFound       Code = 5003

	CodeNotificationNotFound Code = 6001

	CodeContractNotFound Code = 7001
)

type codeInfo struct {
	name    string
	message string
	status  int
}

var codes = map[Code]codeInfo{
	CodeSuccess:               {"SUCCESS", "Success", http.StatusOK},
	CodeInternal:              {"INTERNAL_SERVER_ERROR", "Internal server error", http.StatusInternalServerError},
	CodeValidation:            {"VALIDATION_ERROR", "Validation error", http.StatusBadRequest},
	CodeUnauthorized:          {"UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized},
	CodeForbidden:             {"FORBIDDEN", "Forbidden", http.StatusForbidden},
	CodeAccessDenied:          {"ACCESS_DENIED", "Access denied", http.StatusForbidden},
	CodeNotFound:              {"NOT_FOUND", "Resource not found", http.StatusNotFound},
	CodeHashingFailed:         {"HASHING_FAILED", "Hashing failed", http.StatusInternalServerError},
	CodeUserAlreadyExists:     {"USER_ALREADY_EXISTS", "User already exists", http.StatusConflict},
	CodeUserNotFound:          {"USER_NOT_FOUND", "User not found", http.StatusNotFound},
	CodeInvalidPassword:       {"INVALID_PASSWORD", "Invalid password", http.StatusUnauthorized},
	CodeResidentNotFound:      {"RESIDENT_NOT_FOUND", "Resident not found", http.StatusNotFound},
	CodeBuildingNotFound:      {"BUILDING_NOT_FOUND", "Building not found", http.StatusNotFound},
	CodeApartmentNotFound:     {"APARTMENT_NOT_FOUND", "Apartment not found", http.StatusNotFound},
	CodeServiceNotFound:       {"SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound},
	CodeSubscriptionNotFound:  {"SUBSCRIPTION_NOT_FOUND", "Subscription not found", http.StatusNotFound},
	CodeSubscriptionMismatch:  {"SUBSCRIPTION_MISMATCH", "Subscription does not belong to apartment", http.StatusBadRequest},
	CodeInvoiceNotFound:       {"INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound},
	CodeInvoiceDetailNotFound: {"INVOICE_DETAIL_NOT_FOUND", "Invoice detail not found", http.StatusNotFound},
	CodePaymentNotFound:       {"PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound},
	CodeNotificationNotFound:  {"NOTIFICATION_NOT_FOUND", "Notification not found", http.StatusNotFound},
	CodeContractNotFound:      {"CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound},
}

// Name returns the symbolic name of the code, e.g. "APARTMENT_NOT_FOUND".
func (c Code) Name() string {
	if info, ok := codes[c]; ok {
		return info.name
	}

	return codes[CodeInternal].name
}

// Message returns the fixed human-readable message for the code.
func (c Code) Message() string {
	if info, ok := codes[c]; ok {
		return info.message
	}

	return codes[CodeInternal].message
}

// Status returns the HTTP status used when rendering the code.
func (c Code) Status() int {
	if info, ok := codes[c]; ok {
		return info.status
	}

	return http.StatusInternalServerError
}

func (c Code) String() string {
	return c.Name()
}
