package gateway

import (
	"wildhaven/internal/pkg/result"
)

// problemFields is the documented field list for the structured-error
// heuristic: a JSON object is treated as a structured error when ANY of these
// keys is present. The list is fixed; new backend fields must not broaden it
// silently. Known ambiguity: a legitimate domain object carrying e.g. a
// "title" field would be misclassified, so backends are expected to reserve
// these keys for error payloads.
var problemFields = []string{
	"code",
	"messageKey",
	"errors",
	"validationErrors",
	"title",
	"detail",
	"traceId",
}

// isProblemDetails reports whether a decoded response payload looks like a
// structured error body.
func isProblemDetails(payload any) bool {
	obj, ok := payload.(map[string]any)
	if !ok {
		return false
	}
	for _, field := range problemFields {
		if _, present := obj[field]; present {
			return true
		}
	}
	return false
}

// toAppError converts a structured error payload into the canonical shape,
// preserving the original HTTP status. Unusable fields fall back to the
// UNEXPECTED_ERROR defaults.
func toAppError(payload any, httpStatus int) *result.AppError {
	appErr := result.NewAppError(
		result.CodeUnexpectedError,
		"errors.unexpected",
		result.WithStatus(httpStatus),
	)

	obj, ok := payload.(map[string]any)
	if !ok {
		return appErr
	}

	if code, ok := obj["code"].(string); ok {
		appErr.Code = code
	}
	if messageKey, ok := obj["messageKey"].(string); ok {
		appErr.MessageKey = messageKey
	}
	if detail, ok := obj["detail"].(string); ok {
		appErr.Details = detail
	}
	if traceID, ok := obj["traceId"].(string); ok {
		appErr.TraceID = traceID
	}
	appErr.ValidationErrors = extractValidationErrors(obj)

	return appErr
}

// extractValidationErrors normalizes the field->messages map, preferring
// "validationErrors" over the legacy "errors" key and keeping string-array
// values only.
func extractValidationErrors(obj map[string]any) map[string][]string {
	raw, ok := obj["validationErrors"].(map[string]any)
	if !ok {
		raw, ok = obj["errors"].(map[string]any)
		if !ok {
			return nil
		}
	}

	normalized := make(map[string][]string)
	for field, value := range raw {
		items, ok := value.([]any)
		if !ok {
			continue
		}
		messages := make([]string, 0, len(items))
		allStrings := true
		for _, item := range items {
			s, ok := item.(string)
			if !ok {
				allStrings = false
				break
			}
			messages = append(messages, s)
		}
		if allStrings && len(messages) > 0 {
			normalized[field] = messages
		}
	}

	if len(normalized) == 0 {
		return nil
	}
	return normalized
}
