package errors

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *BlogError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func InvalidDocument(path string, cause error) *BlogError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration document could not be parsed").
		WithContext("path", path)
}

func ConfigRequired(field string) *BlogError {
	return New(CategoryValidation, SeverityFatal, "required configuration missing").
		WithContext("field", field)
}

func ValidationFailed(field, reason string) *BlogError {
	return New(CategoryValidation, SeverityFatal, reason).
		WithContext("field", field)
}

// Output errors

func FileWrite(path string, cause error) *BlogError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "failed to write output").
		WithContext("path", path)
}

func WatchError(operation string, cause error) *BlogError {
	return Wrap(cause, CategoryRuntime, SeverityError, "watch operation failed").
		WithContext("operation", operation)
}

// Internal errors

func InternalError(message string, cause error) *BlogError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
