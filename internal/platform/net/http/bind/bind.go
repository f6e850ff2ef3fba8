// Package bind decodes request bodies and validates filters
package bind

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"unicode"

	perr "devfeed/internal/platform/errors"
	"devfeed/internal/platform/logger"

	"github.com/bytedance/sonic"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// FieldLevel aliases validator.FieldLevel for custom rules
type FieldLevel = validator.FieldLevel

// ValidatorSvc pairs the validator with its english translator
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	vOnce sync.Once
	vSvc  *ValidatorSvc
)

// messages overriding the stock english translations
var shortMessages = map[string]string{
	"min":   "{0} must be at least {1}",
	"max":   "{0} must be at most {1}",
	"oneof": "{0} must be one of [{1}]",
	"topic": "{0} must be a single tag without spaces or separators",
}

// Get returns the process validator, building it on first use
// field names in messages come from json tags
func Get() *ValidatorSvc {
	vOnce.Do(func() {
		loc := en.New()
		trans, _ := ut.New(loc, loc).GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonName)
		_ = en_translations.RegisterDefaultTranslations(v, trans)
		_ = v.RegisterValidation("topic", isTopic)
		for tag, text := range shortMessages {
			translate(v, trans, tag, text)
		}
		vSvc = &ValidatorSvc{Validator: v, Translator: trans}
	})
	return vSvc
}

// RegisterValidation adds or replaces a custom tag
func RegisterValidation(tag string, fn validator.Func) error {
	return Get().Validator.RegisterValidation(tag, fn)
}

// JSONOptions tunes ParseJSON; the zero value is not the default, see ParseJSON
type JSONOptions struct {
	MaxBytes        int64
	DisallowUnknown bool
	RequireBody     bool
}

var defaultJSON = JSONOptions{MaxBytes: 64 << 10, DisallowUnknown: true}

var (
	strictAPI  = sonic.Config{DisallowUnknownFields: true}.Froze()
	lenientAPI = sonic.ConfigDefault
)

// ParseJSON reads r's body into T and validates it
// by default bodies are capped at 64KB, unknown fields are rejected and an empty body is T's zero value
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var dst, zero T
	o := defaultJSON
	if len(opts) > 0 {
		o = opts[0]
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.Named("bind").Warn().Err(err).Msg("close request body")
		}
	}()

	var body io.Reader = r.Body
	if o.MaxBytes > 0 {
		body = io.LimitReader(body, o.MaxBytes)
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		return zero, perr.Wrap(err, perr.ErrorCodeJSON, "read body")
	}
	raw = bytes.TrimSpace(raw)

	switch {
	case len(raw) == 0 && o.RequireBody:
		return zero, perr.JSONErrf("empty body")
	case len(raw) == 0:
	case !sonic.Valid(raw):
		return zero, perr.JSONErrf("malformed JSON body")
	default:
		api := lenientAPI
		if o.DisallowUnknown {
			api = strictAPI
		}
		if err := api.Unmarshal(raw, &dst); err != nil {
			return zero, perr.JSONErrf("invalid JSON: %v", err)
		}
	}

	if err := Validate(dst); err != nil {
		return zero, err
	}
	return dst, nil
}

// Validate checks v's validate tags; the first failure becomes a Validation error naming the field
func Validate(v any) error {
	err := Get().Validator.Struct(v)
	if err == nil {
		return nil
	}
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		logger.Named("bind").Error().Err(inv).Msg("validator misuse")
		return perr.JSONErrf("validation error")
	}
	field, msg := ValidationFieldAndMessage(err)
	return perr.WithField(perr.New(perr.ErrorCodeValidation, msg), field)
}

// ValidationFieldAndMessage returns the first failing field and its english message
func ValidationFieldAndMessage(err error) (field, message string) {
	var verrs validator.ValidationErrors
	switch {
	case err == nil:
		return "", ""
	case errors.As(err, &verrs) && len(verrs) > 0:
		return verrs[0].Field(), verrs[0].Translate(Get().Translator)
	default:
		return "", err.Error()
	}
}

func jsonName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return fld.Name
	}
	return name
}

// isTopic accepts tag names like "go", "c++" or "machine-learning"
func isTopic(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s != "" && !strings.ContainsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(",;/?&", r)
	})
}

func translate(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}
