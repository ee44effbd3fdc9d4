package scene

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/twinkle/internal/palette"
	twinkleerrors "github.com/alexisbeaulieu97/twinkle/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?$`)

	elementTypes = map[ElementType]struct{}{ElementLight: {}, ElementToggle: {}}
	sizeClasses  = map[SizeClass]struct{}{SizeSmall: {}, SizeMedium: {}, SizeLarge: {}}
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("element_type", func(fl validator.FieldLevel) bool {
			_, ok := elementTypes[ElementType(fl.Field().String())]
			return ok
		})

		_ = v.RegisterValidation("size_class", func(fl validator.FieldLevel) bool {
			_, ok := sizeClasses[SizeClass(fl.Field().String())]
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema and cross-field validation on a scene.
func Validate(s *Scene) error {
	if s == nil {
		return twinkleerrors.NewValidationError("scene", "scene is nil", nil)
	}

	if err := validatorInstance().Struct(s); err != nil {
		return convertValidationError(err)
	}

	if len(s.Palette) > 0 {
		if _, err := palette.New(s.Palette); err != nil {
			return twinkleerrors.NewValidationError("palette", err.Error(), err)
		}
	}

	knob := s.KnobDiameter()
	for r, row := range s.Rows {
		for i, el := range row.Elements {
			if err := validateElement(el, knob); err != nil {
				return twinkleerrors.NewValidationError(fieldForElement(r, i, err.field), err.message, nil)
			}
		}
	}

	return nil
}

type elementIssue struct {
	field   string
	message string
}

func validateElement(el Element, knob int) *elementIssue {
	switch el.Type {
	case ElementLight:
		if el.Size != 0 {
			return &elementIssue{field: "size", message: "size applies only to toggles"}
		}
		if el.SizeClass != "" {
			return &elementIssue{field: "size_class", message: "size_class applies only to toggles"}
		}
	case ElementToggle:
		if el.SizeClass == "" {
			return &elementIssue{field: "size_class", message: "toggle requires a size_class"}
		}
		if el.Size <= knob {
			return &elementIssue{field: "size", message: fmt.Sprintf("toggle size %d must exceed knob diameter %d", el.Size, knob)}
		}
	}
	return nil
}

func fieldForElement(row, index int, field string) string {
	return fmt.Sprintf("rows[%d].elements[%d].%s", row, index, field)
}

func convertValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return twinkleerrors.NewValidationError("", err.Error(), err)
	}

	first := validationErrs[0]
	field := yamlFieldPath(first.Namespace())
	return twinkleerrors.NewValidationError(field, describeTag(first), err)
}

// yamlFieldPath drops the root struct name from a validator namespace such
// as "Scene.rows[2].elements[0].size_class".
func yamlFieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "hexcolor":
		return fmt.Sprintf("%v is not a hex color", fe.Value())
	case "unique":
		return "must not contain duplicates"
	case "semver":
		return fmt.Sprintf("%v is not a valid version", fe.Value())
	case "element_type":
		return fmt.Sprintf("unknown element type %v", fe.Value())
	case "size_class":
		return fmt.Sprintf("unknown size class %v", fe.Value())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
