package result

// Error taxonomy. Codes are part of the external contract; renaming one is a
// breaking change for every localized message table keyed off it.
const (
	CodeNetworkError       = "NETWORK_ERROR"
	CodeUnexpectedError    = "UNEXPECTED_ERROR"
	CodeNotImplemented     = "NOT_IMPLEMENTED"
	CodeAuthRefreshExpired = "AUTH_REFRESH_EXPIRED"
	CodeNotAllowed         = "NOT_ALLOWED"
	CodeValidationError    = "VALIDATION_ERROR"
	CodeSessionError       = "SESSION_ERROR"
	CodeInternalError      = "INTERNAL_ERROR"

	CodeCabinNotFound       = "CABIN_NOT_FOUND"
	CodeCabinLoadError      = "CABIN_LOAD_ERROR"
	CodeCabinsLoadError     = "CABINS_LOAD_ERROR"
	CodeSettingsLoadError   = "SETTINGS_LOAD_ERROR"
	CodeSettingsUpdateError = "SETTINGS_UPDATE_ERROR"
	CodeBookingsLoadError   = "BOOKINGS_LOAD_ERROR"
	CodeBookingNotFound     = "BOOKING_NOT_FOUND"
	CodeBookingCreateError  = "BOOKING_CREATE_ERROR"
	CodeBookingUpdateError  = "BOOKING_UPDATE_ERROR"
	CodeBookingDeleteError  = "BOOKING_DELETE_ERROR"
	CodeGuestCreateError    = "GUEST_CREATE_ERROR"
	CodeGuestUpdateError    = "GUEST_UPDATE_ERROR"
	CodeGuestLoadError      = "GUEST_LOAD_ERROR"
	CodeUserLoadError       = "USER_LOAD_ERROR"
)
