package schedule

import (
	_ "embed"
	"fmt"
)

//go:embed default_schedule.yaml
var defaultYAML []byte

// Default returns the slate compiled into the binary, used when no
// schedule file is supplied on the command line.
func Default() (*Store, error) {
	s, err := parse(defaultYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded schedule: %w", err)
	}
	return s, nil
}
