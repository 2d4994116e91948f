package revision

import (
	"errors"
	"fmt"
)

// ErrorKind is the category of a failed revision attempt.
type ErrorKind int

const (
	// KindValidation indicates empty input; no request was made.
	KindValidation ErrorKind = iota
	// KindConfiguration indicates a missing API key; no request was made.
	KindConfiguration
	// KindTransport indicates the request or the response body failed at the transport level.
	KindTransport
	// KindUpstream indicates the provider answered with an explicit error object.
	KindUpstream
	// KindEmptyResponse indicates the provider answered without usable text.
	KindEmptyResponse
	// KindParse indicates the reply text held no parseable JSON object.
	KindParse
)

// String returns a human-readable name for the kind
func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "Validation Error"
	case KindConfiguration:
		return "Configuration Error"
	case KindTransport:
		return "Transport Error"
	case KindUpstream:
		return "Upstream Error"
	case KindEmptyResponse:
		return "Empty Response"
	case KindParse:
		return "Parse Error"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is returned by every revision step that can fail.
type Error struct {
	Kind    ErrorKind
	Message string // provider or transport message, may be empty
	Err     error  // underlying error, if any
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil && e.Message != e.Err.Error() {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Message, e.Err)
	}
	if e.Message == "" && e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// ErrBusy is returned by Submit and Begin while an attempt is in flight.
var ErrBusy = errors.New("revision already in progress")

func NewValidationError() *Error {
	return &Error{Kind: KindValidation, Message: "empty input"}
}

func NewConfigurationError() *Error {
	return &Error{Kind: KindConfiguration, Message: "api key not configured"}
}

// NewTransportError keeps err's text as the user-visible message.
func NewTransportError(err error) *Error {
	return &Error{Kind: KindTransport, Message: err.Error(), Err: err}
}

func NewUpstreamError(message string, err error) *Error {
	return &Error{Kind: KindUpstream, Message: message, Err: err}
}

func NewEmptyResponseError() *Error {
	return &Error{Kind: KindEmptyResponse, Message: "no text in response"}
}

func NewParseError(message string, err error) *Error {
	return &Error{Kind: KindParse, Message: message, Err: err}
}

// KindOf reports the kind of err. Errors that are not *Error are treated as transport failures.
func KindOf(err error) ErrorKind {
	var revErr *Error
	if errors.As(err, &revErr) {
		return revErr.Kind
	}
	return KindTransport
}

// IsKind checks whether err is a revision error of kind k.
func IsKind(err error, k ErrorKind) bool {
	var revErr *Error
	return errors.As(err, &revErr) && revErr.Kind == k
}

const (
	msgValidation    = "添削する文面を入力してください"
	msgConfiguration = "Gemini APIキーが設定されていません。設定ファイルまたは環境変数を確認してください。"
	msgTransport     = "エラーが発生しました: "
	msgUpstream      = "APIエラー: "
	msgUpstreamEmpty = "エラーが発生しました"
	msgEmptyResponse = "AIからの応答がありませんでした"
	msgParse         = "AIからの応答を解析できませんでした"
	msgUnknown       = "不明なエラー"
)

// UserMessage returns the text shown in the error panel for err.
func UserMessage(err error) string {
	var revErr *Error
	if !errors.As(err, &revErr) {
		return msgTransport + err.Error()
	}
	switch revErr.Kind {
	case KindValidation:
		return msgValidation
	case KindConfiguration:
		return msgConfiguration
	case KindTransport:
		if revErr.Message == "" {
			return msgTransport + msgUnknown
		}
		return msgTransport + revErr.Message
	case KindUpstream:
		if revErr.Message == "" {
			return msgUpstream + msgUpstreamEmpty
		}
		return msgUpstream + revErr.Message
	case KindEmptyResponse:
		return msgEmptyResponse
	case KindParse:
		return msgParse
	default:
		return msgTransport + revErr.Error()
	}
}

// analyticsEvent returns the action and label recorded for a failed attempt.
func analyticsEvent(err error) (action, label string) {
	var revErr *Error
	if !errors.As(err, &revErr) {
		return "revision_error", err.Error()
	}
	switch revErr.Kind {
	case KindValidation:
		return "validation_error", "empty_input"
	case KindConfiguration:
		return "configuration_error", "missing_api_key"
	case KindTransport:
		return "revision_error", nonEmpty(revErr.Message, msgUnknown)
	case KindUpstream:
		return "api_error", nonEmpty(revErr.Message, "unknown")
	case KindEmptyResponse:
		return "empty_response", revErr.Kind.String()
	case KindParse:
		return "parse_error", revErr.Kind.String()
	default:
		return "revision_error", revErr.Error()
	}
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
