package am

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/teranos/sankeyfmt/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that the configuration is valid.
// Field errors are reported with their dotted configuration key.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return fieldError(fieldErrs[0])
		}
		return errors.Wrap(err, "invalid configuration")
	}

	// Font sizes are independent, but a link label larger than the node label is almost
	// always a swapped pair of keys.
	if c.Format.LinkLabelFontSize > c.Format.FontSize*2 {
		return errors.WithHint(
			errors.Newf("format.link_label_font_size (%g) is more than twice format.font_size (%g)",
				c.Format.LinkLabelFontSize, c.Format.FontSize),
			"check that the two font size keys are not swapped",
		)
	}

	return nil
}

func fieldError(fe validator.FieldError) error {
	key := configKey(fe.StructNamespace())
	switch fe.Tag() {
	case "gte":
		return errors.Newf("%s must be >= %s, got %v", key, fe.Param(), fe.Value())
	case "lte":
		return errors.Newf("%s must be <= %s, got %v", key, fe.Param(), fe.Value())
	case "oneof":
		return errors.Newf("%s must be one of [%s], got %q", key, fe.Param(), fe.Value())
	case "hexcolor":
		return errors.Newf("%s must be a hex color such as #1F77B4, got %q", key, fe.Value())
	case "required":
		return errors.Newf("%s cannot be empty", key)
	default:
		return errors.Newf("%s failed %s validation", key, fe.Tag())
	}
}

// configKey maps "Config.Format.FontSize" to "format.font_size"
func configKey(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		parts[i] = snakeCase(p)
	}
	return strings.Join(parts, ".")
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
