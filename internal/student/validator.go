package student

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

var mobilePattern = regexp.MustCompile(`^\+?[0-9][0-9 -]{7,14}$`)

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("mobile", isMobileNumber); err != nil {
		return nil, nil, fmt.Errorf("failed to register mobile validation: %w", err)
	}
	if err := validate.RegisterTranslation("mobile", trans, func(ut ut.Translator) error {
		return ut.Add("mobile", "{0} must be a valid mobile number", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("mobile", fe.Field())
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register mobile translation: %w", err)
	}

	return validate, trans, nil
}

func isMobileNumber(fl validator.FieldLevel) bool {
	return mobilePattern.MatchString(fl.Field().String())
}

// translateValidationErrors flattens validator failures into one
// human-readable message suitable for re-prompting the user.
func translateValidationErrors(err error, trans ut.Translator) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	messages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		messages = append(messages, fieldError.Translate(trans))
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(messages, "; "))
}
