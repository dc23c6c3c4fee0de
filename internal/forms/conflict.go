package forms

import "github.com/g-villarinho/flash-buy-admin/internal/apierr"

// conflictField resolves which field a 409 belongs to: the server's own
// field hint when it sends one, otherwise the form's uniqueness field.
func conflictField(err error, fallback string) string {
	if ae, ok := apierr.As(err); ok && ae.Field != "" {
		return ae.Field
	}
	return fallback
}

// MapConflict turns a conflict error into a field-level validation error
// on the form's uniqueness field. Non-conflict errors return nil so the
// caller can fall through to the generic handling path.
func MapConflict(err error, fallback, message string) FieldErrors {
	if !apierr.IsConflict(err) {
		return nil
	}
	return FieldErrors{conflictField(err, fallback): message}
}
