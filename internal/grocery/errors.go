package grocery

import "errors"

// ErrMissingPlan is returned when grocery generation is requested without a
// meal plan. The pipeline still returns an empty, well-formed list; the
// error exists so callers can surface a message to the user.
var ErrMissingPlan = errors.New("no meal plan available")
