package commerce

// RequireExists checks that a field is non-empty (entity exists).
func RequireExists(field, errMsg string) *CommandError {
	if field == "" {
		return NewNotFound(errMsg)
	}
	return nil
}

// RequireNotEmptyString checks that an identifier argument was supplied.
func RequireNotEmptyString(value, errMsg string) *CommandError {
	if value == "" {
		return NewInvalidArgument(errMsg)
	}
	return nil
}

// RequireNonNegative checks that a value is zero or greater.
func RequireNonNegative(value int64, errMsg string) *CommandError {
	if value < 0 {
		return NewInvalidArgument(errMsg)
	}
	return nil
}

// RequireNotEmpty checks that a slice has at least one element.
func RequireNotEmpty[T any](items []T, errMsg string) *CommandError {
	if len(items) == 0 {
		return NewFailedPrecondition(errMsg)
	}
	return nil
}

// RequireStatusNot checks that the current status is NOT the forbidden value.
func RequireStatusNot(actual, forbidden, errMsg string) *CommandError {
	if actual == forbidden {
		return NewFailedPrecondition(errMsg)
	}
	return nil
}
