package analysis

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"dashboard.nigeriaindicators.org/internal/indicators"
)

// RangeMessage is shown instead of any view when the end year precedes the start year.
const RangeMessage = "End year must be greater than or equal to start year."

const (
	defaultStartYear = 1999
	defaultEndYear   = 2023
)

// Selection is the set of user controls driving the views.
type Selection struct {
	Start     int64  `json:"start" validate:"gte=1000,lte=9999"`
	End       int64  `json:"end" validate:"gte=1000,lte=9999"`
	Indicator string `json:"indicator" validate:"required"`
	X         string `json:"x" validate:"required"`
	Y         string `json:"y" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// EndBeforeStart reports whether the selected range is inverted.
func EndBeforeStart(start, end int64) bool {
	return start > end
}

// DefaultPair picks the relationship view's indicators: GDP against
// population growth when both exist, otherwise the first two by display order.
func DefaultPair(names []string) (x, y string) {
	has := func(name string) bool {
		for _, n := range names {
			if n == name {
				return true
			}
		}
		return false
	}

	if has(indicators.GDP) && has(indicators.PopulationGrowth) {
		return indicators.GDP, indicators.PopulationGrowth
	}
	switch len(names) {
	case 0:
		return "", ""
	case 1:
		return names[0], names[0]
	default:
		return names[0], names[1]
	}
}

// DefaultSelection returns the initial controls: 1999 to 2023 clamped to the
// observed years, the first indicator and the default relationship pair.
func DefaultSelection(table *indicators.Table) Selection {
	names := table.Indicators()
	sel := Selection{Start: defaultStartYear, End: defaultEndYear}
	if len(names) > 0 {
		sel.Indicator = names[0]
	}
	sel.X, sel.Y = DefaultPair(names)

	if minYear, maxYear, ok := table.YearBounds(); ok {
		sel.Start = clampYear(sel.Start, minYear, maxYear)
		sel.End = clampYear(sel.End, minYear, maxYear)
	}
	return sel
}

// Clamp forces the selection into what the controls can express: years
// within the observed bounds and known indicators. The range order is left
// alone so EndBeforeStart can still be reported.
func (s Selection) Clamp(table *indicators.Table) Selection {
	defaults := DefaultSelection(table)

	if minYear, maxYear, ok := table.YearBounds(); ok {
		s.Start = clampYear(s.Start, minYear, maxYear)
		s.End = clampYear(s.End, minYear, maxYear)
	}
	if !table.HasIndicator(s.Indicator) {
		s.Indicator = defaults.Indicator
	}
	if !table.HasIndicator(s.X) {
		s.X = defaults.X
	}
	if !table.HasIndicator(s.Y) {
		s.Y = defaults.Y
	}
	return s
}

// Validate checks the selection against the table and returns field errors
// keyed by control name. An empty map means the selection is valid.
func (s Selection) Validate(table *indicators.Table) map[string][]string {
	fieldErrors := make(map[string][]string)

	if err := validate.Struct(s); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			fieldErrors["selection"] = append(fieldErrors["selection"], err.Error())
			return fieldErrors
		}
		for _, fe := range validationErrors {
			fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], fieldMessage(fe))
		}
	}

	if minYear, maxYear, ok := table.YearBounds(); ok {
		for field, year := range map[string]int64{"start": s.Start, "end": s.End} {
			if _, bad := fieldErrors[field]; bad {
				continue
			}
			if year < minYear || year > maxYear {
				fieldErrors[field] = append(fieldErrors[field],
					fmt.Sprintf("Year must be between %d and %d.", minYear, maxYear))
			}
		}
	}

	for field, name := range map[string]string{"indicator": s.Indicator, "x": s.X, "y": s.Y} {
		if name != "" && !table.HasIndicator(name) {
			fieldErrors[field] = append(fieldErrors[field], fmt.Sprintf("Unknown indicator %q.", name))
		}
	}

	if EndBeforeStart(s.Start, s.End) {
		fieldErrors["end"] = append(fieldErrors["end"], RangeMessage)
	}

	return fieldErrors
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Field %q is required.", fe.Field())
	case "gte", "lte":
		return "Year must have four digits."
	default:
		return fmt.Sprintf("Invalid field value for field %q.", fe.Field())
	}
}

func clampYear(year, minYear, maxYear int64) int64 {
	return max(minYear, min(year, maxYear))
}
