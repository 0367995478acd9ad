package config

import (
	"fmt"
	"os"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("file", isFileReadable); err != nil {
		return nil, nil, fmt.Errorf("failed to register file validation: %w", err)
	}
	if err := validate.RegisterTranslation("file", trans, func(ut ut.Translator) error {
		return ut.Add("file", "{0} must be an existing and readable file", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("file", strings.TrimPrefix(fe.Namespace(), "Config."))
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register file translation: %w", err)
	}

	validate.RegisterStructValidation(validateSessionLanguages, SessionConfig{})
	if err := validate.RegisterTranslation("supported", trans, func(ut ut.Translator) error {
		return ut.Add("supported", "{0} must be one of supported_languages", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("supported", fe.Field())
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register supported translation: %w", err)
	}

	return validate, trans, nil
}

// validateSessionLanguages requires the default direction to be drawn from the supported set.
func validateSessionLanguages(sl validator.StructLevel) {
	session := sl.Current().Interface().(SessionConfig)
	if session.SourceLanguage != "" && !slices.Contains(session.SupportedLanguages, session.SourceLanguage) {
		sl.ReportError(session.SourceLanguage, "source_language", "SourceLanguage", "supported", "")
	}
	if session.TargetLanguage != "" && !slices.Contains(session.SupportedLanguages, session.TargetLanguage) {
		sl.ReportError(session.TargetLanguage, "target_language", "TargetLanguage", "supported", "")
	}
}

func isFileReadable(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	if path == "" {
		return false
	}

	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if info.IsDir() {
		return false
	}

	// Check if the owner has read permission
	return info.Mode().Perm()&(1<<(uint(7))) != 0
}
