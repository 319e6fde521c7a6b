package validation

import (
	"strings"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/es"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	es_translations "github.com/go-playground/validator/v10/translations/es"
)

// Catalog resolves violation messages for a locale. Tags without a catalog
// entry fall back to the validator's built-in error template.
type Catalog struct {
	uni *ut.UniversalTranslator
}

type localeMessages struct {
	locale   string
	register func(*validator.Validate, ut.Translator) error
	notBlank string
}

var bundled = []localeMessages{
	{locale: "en", register: en_translations.RegisterDefaultTranslations, notBlank: "{0} must not be blank"},
	{locale: "es", register: es_translations.RegisterDefaultTranslations, notBlank: "{0} no debe estar en blanco"},
}

// NewCatalog registers the bundled translations on v.
func NewCatalog(v *validator.Validate) (*Catalog, error) {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale, es.New())

	for _, lm := range bundled {
		trans, _ := uni.GetTranslator(lm.locale)
		if err := lm.register(v, trans); err != nil {
			return nil, err
		}
		if err := registerMessage(v, trans, "notblank", lm.notBlank); err != nil {
			return nil, err
		}
	}

	return &Catalog{uni: uni}, nil
}

// Translator returns the best match for the preferred locales ("es-ES", "es", ...).
// Unknown locales resolve to English.
func (c *Catalog) Translator(locales []string) ut.Translator {
	candidates := make([]string, 0, len(locales)*2)
	for _, l := range locales {
		l = strings.ReplaceAll(strings.TrimSpace(l), "-", "_")
		if l == "" {
			continue
		}
		candidates = append(candidates, l)
		if base, _, found := strings.Cut(l, "_"); found {
			candidates = append(candidates, base)
		}
	}
	trans, _ := c.uni.FindTranslator(candidates...)
	return trans
}

func registerMessage(v *validator.Validate, trans ut.Translator, tag, text string) error {
	return v.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error {
			return ut.Add(tag, text, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, err := ut.T(tag, fe.Field())
			if err != nil {
				return fe.Error()
			}
			return msg
		},
	)
}
