package api

import "github.com/kindmap/kindmap-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1002: "difference between the request time and the current time is too large",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: "this client has already been registered",
		1101: "account not found",

		1200: store.ErrPostNotFound.Error(),
		1201: "post location is required",
		1202: "unknown post type",
		1203: "unknown sticker",
		1204: "post attachment is required",
		1205: "message contains a blocked word",

		1300: store.ErrProfileNotFound.Error(),

		1400: store.ErrNoLandmarks.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorRequestTimeTooSkewed       = errorJSON(1002)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountTaken    = errorJSON(1100)
	errorAccountNotFound = errorJSON(1101)

	errorUnknownPost        = errorJSON(1200)
	errorLocationRequired   = errorJSON(1201)
	errorUnknownPostType    = errorJSON(1202)
	errorUnknownSticker     = errorJSON(1203)
	errorAttachmentRequired = errorJSON(1204)
	errorBlockedWord        = errorJSON(1205)

	errorProfileNotFound = errorJSON(1300)

	errorNoLandmarks = errorJSON(1400)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
