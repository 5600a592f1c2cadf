package climb

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidClimbSummary = errors.New("invalid climb summary")

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Report json names so messages match the request payload
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})
	})
	return validate
}

// Validate checks c and returns an error wrapping ErrInvalidClimbSummary
// describing every failed field.
func (c ClimbSummary) Validate() error {
	var problems []string

	for name, v := range map[string]float64{
		"elevation":   c.Elevation,
		"length":      c.Length,
		"avgGradient": c.AvgGradient,
		"maxGradient": c.MaxGradient,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			problems = append(problems, fmt.Sprintf("%s must be a finite number", name))
		}
	}

	if err := getValidator().Struct(c); err != nil {
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			return fmt.Errorf("%w: %v", ErrInvalidClimbSummary, err)
		}
		for _, fe := range validationErrs {
			problems = append(problems, describeFieldError(fe))
		}
	}

	if c.ID == "" && c.Name != "" && Slugify(c.Name) == "" {
		problems = append(problems, "name must contain a letter or digit")
	}

	seen := make(map[string]int, len(c.Sides))
	for i, side := range c.Sides {
		// Sides are stored by slug, so two sides must never share one
		if slug := Slugify(side.Name); slug == "" {
			if side.Name != "" {
				problems = append(problems, fmt.Sprintf("sides[%d].name must contain a letter or digit", i))
			}
		} else if first, ok := seen[slug]; ok {
			problems = append(problems, fmt.Sprintf("sides[%d].name duplicates sides[%d]", i, first))
		} else {
			seen[slug] = i
		}
		if !side.Start.IsValid() {
			problems = append(problems, fmt.Sprintf("sides[%d].start is not a valid coordinate", i))
		}
		if !side.End.IsValid() {
			problems = append(problems, fmt.Sprintf("sides[%d].end is not a valid coordinate", i))
		}
	}

	if len(problems) == 0 {
		return nil
	}
	// Map iteration order is random
	slices.Sort(problems)
	return fmt.Errorf("%w: %s", ErrInvalidClimbSummary, strings.Join(problems, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must not be negative", field)
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gtefield":
		return fmt.Sprintf("%s must be at least avgGradient", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must contain at least %s item(s)", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
