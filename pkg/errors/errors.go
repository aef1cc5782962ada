package errors

import (
	"errors"
	"fmt"
)

var (
	// Tokens issued by the identity provider
	ErrInvalidSigningMethod = errors.New("지원하지 않는 토큰 서명 방식입니다")
	ErrInvalidToken         = errors.New("유효하지 않은 토큰입니다")
	ErrTokenExpired         = errors.New("토큰이 만료되었습니다")
	ErrEmptyAuthHeader      = errors.New("인증 헤더가 없습니다")
	ErrInvalidAuthHeader    = errors.New("인증 헤더 형식이 올바르지 않습니다")
	ErrUnauthorized         = errors.New("인증이 필요합니다")

	// General
	ErrNotFound   = errors.New("데이터를 찾을 수 없습니다")
	ErrBadRequest = errors.New("잘못된 요청입니다")
	ErrValidation = errors.New("입력값이 올바르지 않습니다")

	// Maintenance domain
	ErrInvalidCode        = errors.New("번호 형식이 올바르지 않습니다 (예: 25-1)")
	ErrDuplicateCode      = errors.New("이미 사용 중인 일정 번호입니다")
	ErrWorkResultRequired = errors.New("작업 결과를 입력해야 완료 처리할 수 있습니다")
	ErrDuplicateEquipment = errors.New("같은 이름의 설비가 이미 등록되어 있습니다")
)

// HttpError carries the status code and the message shown to the user.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}

// ValidationError reports a single rejected field. It matches ErrValidation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func NewValidationError(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
