package configdef

import (
	"fmt"
	"strings"

	"gopkg.in/dealancer/validate.v2"
)

type Values struct {
	Scale     int     `json:"scale" validate:"gte=1 & lte=16"`
	Label     bool    `json:"label"`
	LabelSize float64 `json:"label_size" validate:"gte=0 & lte=128"`
	LogLevel  string  `json:"log_level"`
}

var logLevels = []string{"debug", "info", "warn", "silent"}

func (v Values) Validate() error {
	const validationErrorHeader = "validation failed: %s"
	if len(v.LogLevel) == 0 {
		return nil
	}
	for _, l := range logLevels {
		if strings.EqualFold(v.LogLevel, l) {
			return nil
		}
	}
	return fmt.Errorf(validationErrorHeader, fmt.Sprintf("unknown log level %q", v.LogLevel))
}

// RunValidate checks the field tags first, then the cross field rules.
func (v Values) RunValidate() error {
	if err := validate.Validate(&v); err != nil {
		return err
	}
	return v.Validate()
}
