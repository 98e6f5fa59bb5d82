package models

// ValidationKind различает структурные ошибки формата и семантически
// неправдоподобные значения. Обе категории восстановимы повторным вводом.
// ValidationKind distinguishes structural format errors from semantically
// implausible values. Both categories are recoverable by re-entering data.
type ValidationKind string

const (
	ValidationFormat ValidationKind = "format"
	ValidationRange  ValidationKind = "range"
)

// ValidationError - типизированная ошибка валидации данных смены с
// текстом причины для показа пользователю.
// ValidationError is a typed shift validation error carrying a
// human-readable reason for display to the user.
type ValidationError struct {
	Kind   ValidationKind
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewFormatError создает ошибку формата.
func NewFormatError(reason string) *ValidationError {
	return &ValidationError{Kind: ValidationFormat, Reason: reason}
}

// NewRangeError создает ошибку диапазона значений.
func NewRangeError(reason string) *ValidationError {
	return &ValidationError{Kind: ValidationRange, Reason: reason}
}
