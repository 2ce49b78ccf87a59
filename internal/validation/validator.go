package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

const requiredTag = "required"

type violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// PayloadError keeps violations in the order fields are declared
type PayloadError struct {
	violations []violation
}

func (e *PayloadError) Error() string {
	buff := bytes.NewBufferString("")

	for _, err := range e.violations {
		buff.WriteString(err.Message)
		buff.WriteString("\n")
	}

	return buff.String()
}

func (e *PayloadError) Violation(v violation) {
	e.violations = append(e.violations, v)
}

// First returns message of the first violated field
func (e *PayloadError) First() string {
	if len(e.violations) == 0 {
		return ""
	}
	return e.violations[0].Message
}

func (e *PayloadError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Errors []violation `json:"errors"`
	}{
		Errors: e.violations,
	})
}

// EnglishTranslator builds en translator
func EnglishTranslator() (ut.Translator, error) {
	enLocale := en.New()
	unvTranslator := ut.New(enLocale, enLocale)
	trans, ok := unvTranslator.GetTranslator("en")
	if !ok {
		return nil, errors.New("missing en translations")
	}
	return trans, nil
}

// CustomerValidator validates structs and reports violations with client facing messages
type CustomerValidator struct {
	validator  *validator.Validate
	translator ut.Translator
}

// New builds CustomerValidator, field names are taken from json tags and
// required rule is reported as "Enter your <field>"
func New(validate *validator.Validate, translator ut.Translator) (*CustomerValidator, error) {
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	err := validate.RegisterTranslation(requiredTag, translator, func(t ut.Translator) error {
		return t.Add(requiredTag, "Enter your {0}", true)
	}, func(t ut.Translator, fe validator.FieldError) string {
		msg, err := t.T(requiredTag, fe.Field())
		if err != nil {
			return fe.Error()
		}
		return msg
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register required translation - %w", err)
	}

	return &CustomerValidator{
		validator:  validate,
		translator: translator,
	}, nil
}

// Validate returns *PayloadError if any rule is violated
func (v *CustomerValidator) Validate(i any) error {
	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return v.payloadError(ve)
	}

	return err
}

func (v *CustomerValidator) payloadError(ve validator.ValidationErrors) error {
	pldErr := &PayloadError{violations: make([]violation, 0)}
	for _, e := range ve {
		pldErr.Violation(violation{
			Field:   e.Field(),
			Message: e.Translate(v.translator),
		})
	}
	return pldErr
}
