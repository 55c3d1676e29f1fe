package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/frostal/binder"
	"github.com/dmitrymomot/frostal/pkg/logger"
	"github.com/dmitrymomot/frostal/pkg/requestid"
	"github.com/dmitrymomot/frostal/pkg/validator"
)

// ErrorPageParams contains data for rendering error pages
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
	Details    validator.Errors
}

// ErrorToastParams contains data for rendering error toasts
type ErrorToastParams struct {
	Message   string
	Type      string // "error", "warning", "info"
	RequestID string
}

// ErrorHandlerConfig configures the default error handler
type ErrorHandlerConfig struct {
	// ErrorPage renders full error page for HTML clients (default: built-in page)
	ErrorPage func(ErrorPageParams) templ.Component

	// ErrorToast renders toast notification for DataStar requests (default: built-in toast)
	ErrorToast func(ErrorToastParams) templ.Component

	// ToastTarget specifies where to render toast notifications (default: "#toast-container")
	ToastTarget string

	// ToastMode specifies how to render toasts (default: PatchPrepend)
	ToastMode datastar.ElementPatchMode

	// Debug exposes the text of unclassified errors instead of a generic message.
	Debug bool
}

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	Key        string
	Message    string
	Details    validator.Errors
	Type       string
	LogLevel   slog.Level
}

// Helper functions for HTTP status code classification
func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

func isServerError(statusCode int) bool {
	return statusCode >= http.StatusInternalServerError
}

// determineErrorType maps HTTP status codes to error types for UI display
func determineErrorType(statusCode int) string {
	switch {
	case isClientError(statusCode):
		return "warning"
	case isServerError(statusCode):
		return "error"
	default:
		return "info"
	}
}

// determineLogLevel maps HTTP status codes to appropriate log levels
func determineLogLevel(statusCode int) slog.Level {
	if isClientError(statusCode) {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// setConfigDefaults applies default values to ErrorHandlerConfig
func setConfigDefaults(cfg ErrorHandlerConfig) ErrorHandlerConfig {
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchPrepend
	}
	if cfg.ErrorPage == nil {
		cfg.ErrorPage = defaultErrorPage
	}
	if cfg.ErrorToast == nil {
		cfg.ErrorToast = defaultErrorToast
	}
	return cfg
}

// formatValidationErrors creates a single-line message from validation errors
func formatValidationErrors(errs validator.Errors) string {
	var messages []string
	for _, field := range errs.Fields() {
		for _, msg := range errs[field] {
			messages = append(messages, fmt.Sprintf("%s: %s", field, msg))
		}
	}
	if len(messages) == 0 {
		return "Validation failed"
	}
	return strings.Join(messages, "; ")
}

// bindingStatus maps binder failures onto client error codes.
func bindingStatus(err error) (HTTPError, bool) {
	switch {
	case errors.Is(err, binder.ErrUnsupportedMediaType):
		return ErrUnsupportedMediaType, true
	case errors.Is(err, binder.ErrInvalidJSON),
		errors.Is(err, binder.ErrInvalidForm),
		errors.Is(err, binder.ErrInvalidQuery),
		errors.Is(err, binder.ErrMissingContentType):
		return ErrBadRequest, true
	}
	return HTTPError{}, false
}

// classifyError analyzes the error and returns structured error information
func classifyError(err error, debug bool) ErrorInfo {
	info := ErrorInfo{
		StatusCode: ErrInternalServerError.Code,
		Key:        ErrInternalServerError.Key,
		Message:    ErrInternalServerError.Message(),
	}
	if debug && err != nil {
		info.Message = err.Error()
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.StatusCode = httpErr.Code
		info.Key = httpErr.Key
		info.Message = httpErr.Message()
	} else if bindErr, ok := bindingStatus(err); ok {
		info.StatusCode = bindErr.Code
		info.Key = bindErr.Key
		info.Message = bindErr.Message()
		if debug {
			info.Message = err.Error()
		}
	}

	// Validation errors win over any HTTP error wrapped alongside them
	if verrs := validator.ExtractErrors(err); verrs != nil {
		info.StatusCode = ErrUnprocessableEntity.Code
		info.Key = ErrUnprocessableEntity.Key
		info.Message = ErrUnprocessableEntity.Message()
		info.Details = verrs
	}

	info.Type = determineErrorType(info.StatusCode)
	info.LogLevel = determineLogLevel(info.StatusCode)

	return info
}

// logError logs the error with comprehensive context
func logError(log *slog.Logger, ctx Context, err error, info ErrorInfo) {
	r := ctx.Request()
	attrs := []slog.Attr{
		logger.RequestID(requestid.FromContext(r.Context())),
		errorAttr(err),
		logger.Status(info.StatusCode),
		logger.Method(r.Method),
		logger.Path(r.URL.Path),
		slog.Bool("is_datastar", IsDataStar(r)),
		logger.Component("error_handler"),
	}

	var ruleErr *validator.RuleError
	if errors.As(err, &ruleErr) {
		attrs = append(attrs, logger.Field(ruleErr.Field), logger.Rule(ruleErr.Rule))
	}
	if len(info.Details) > 0 {
		attrs = append(attrs, validationAttr(info.Details))
	}

	log.LogAttrs(r.Context(), info.LogLevel, "request error", attrs...)
}

// errorAttr lists each wrapped error of a multi-error, such as a recovered
// panic, separately.
func errorAttr(err error) slog.Attr {
	if multi, ok := err.(interface{ Unwrap() []error }); ok {
		return logger.Errors(multi.Unwrap()...)
	}
	return logger.Error(err)
}

// validationAttr groups failing fields with their messages.
func validationAttr(details validator.Errors) slog.Attr {
	fields := make([]slog.Attr, 0, len(details))
	for i, field := range details.Fields() {
		fields = append(fields, logger.Group(strconv.Itoa(i),
			logger.Field(field),
			slog.Any("messages", details[field]),
		))
	}
	return logger.Group("validation", fields...)
}

// renderDataStarResponse renders error as DataStar toast notification
func renderDataStarResponse(ctx Context, cfg ErrorHandlerConfig, info ErrorInfo, requestID string, log *slog.Logger) {
	message := info.Message
	if len(info.Details) > 0 {
		message = formatValidationErrors(info.Details)
	}

	component := cfg.ErrorToast(ErrorToastParams{
		Message:   message,
		Type:      info.Type,
		RequestID: requestID,
	})
	response := Templ(
		component,
		WithTarget(cfg.ToastTarget),
		WithPatchMode(cfg.ToastMode),
	)

	// Don't set status code for SSE responses
	if renderErr := response.Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
		log.Error("failed to render error toast",
			logger.RequestID(requestID),
			logger.Error(renderErr),
			logger.Event("render_error_toast"),
		)
	}
}

// renderHTMLResponse renders error as full HTML error page
func renderHTMLResponse(ctx Context, cfg ErrorHandlerConfig, info ErrorInfo, requestID string, log *slog.Logger) {
	component := cfg.ErrorPage(ErrorPageParams{
		Error:      info.Message,
		StatusCode: info.StatusCode,
		RequestID:  requestID,
		RetryURL:   ctx.Request().URL.Path,
		Details:    info.Details,
	})

	w := ctx.ResponseWriter()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(info.StatusCode)

	if renderErr := component.Render(ctx.Request().Context(), w); renderErr != nil {
		log.Error("failed to render error page",
			logger.RequestID(requestID),
			logger.Error(renderErr),
			logger.Event("render_error_page"),
		)
	}
}

// errorBody is the JSON shape of an error response.
type errorBody struct {
	Code    int                 `json:"code"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func newErrorBody(info ErrorInfo) errorBody {
	body := errorBody{
		Code:    info.StatusCode,
		Message: info.Message,
		Errors:  map[string][]string{},
	}
	for field, msgs := range info.Details {
		body.Errors[field] = msgs
	}
	return body
}

// renderJSONResponse writes {"code","message","errors"}
func renderJSONResponse(ctx Context, info ErrorInfo, requestID string, log *slog.Logger) {
	w := ctx.ResponseWriter()
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(info.StatusCode)

	if err := json.NewEncoder(w).Encode(newErrorBody(info)); err != nil {
		log.Error("failed to render json error",
			logger.RequestID(requestID),
			logger.Error(err),
			logger.Event("render_error_json"),
		)
	}
}

// renderXMLResponse writes the error document through the XML response
func renderXMLResponse(ctx Context, info ErrorInfo, requestID string, log *slog.Logger) {
	response := XML(newXMLError(info), WithXMLStatus(info.StatusCode))
	if err := response.Render(ctx.ResponseWriter(), ctx.Request()); err != nil {
		log.Error("failed to render xml error",
			logger.RequestID(requestID),
			logger.Error(err),
			logger.Event("render_error_xml"),
		)
	}
}

// NewErrorHandler creates the default error handler that adapts to request type.
// DataStar requests get a toast notification. Other requests get a body in the
// format negotiated from the Accept header: an HTML page, a JSON object or an
// XML document. Configure this once in main.go and pass to all services.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	cfg = setConfigDefaults(cfg)

	// Default logger if not provided
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		requestID := requestid.FromContext(ctx.Request().Context())
		info := classifyError(err, cfg.Debug)
		logError(log, ctx, err, info)

		if IsDataStar(ctx.Request()) {
			renderDataStarResponse(ctx, cfg, info, requestID, log)
			return
		}

		switch NegotiateErrorFormat(ctx.Request().Header.Get("Accept")) {
		case FormatJSON:
			renderJSONResponse(ctx, info, requestID, log)
		case FormatXML:
			renderXMLResponse(ctx, info, requestID, log)
		default:
			renderHTMLResponse(ctx, cfg, info, requestID, log)
		}
	}
}
