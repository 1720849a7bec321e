package regulation

import "errors"

var (
	ErrNoApplicableRegulation = errors.New("no applicable salary regulation for period")
	ErrRegulationNotFound     = errors.New("salary regulation not found")
)
