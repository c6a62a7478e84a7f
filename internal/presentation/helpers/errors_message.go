package helpers

import (
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// GetErrorMessages flattens validator failures into one English sentence
// per field. Non-validation errors pass through untranslated.
func GetErrorMessages(validate *validator.Validate, errs error) string {
	validationErrs, ok := errs.(validator.ValidationErrors)
	if !ok {
		return errs.Error()
	}

	eng := en.New()
	uni := ut.New(eng, eng)
	trans, _ := uni.GetTranslator("en")
	en_translations.RegisterDefaultTranslations(validate, trans)

	messages := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		messages = append(messages, e.Translate(trans))
	}
	return strings.Join(messages, ", ")
}
