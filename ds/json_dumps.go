package ds

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// DumpJSON renders t for log lines. Failures are rendered in place of the value.
func DumpJSON[T any](t T) string {
	tBytes, err := json.Marshal(t)
	if err != nil {
		return errors.Wrap(err, "ds.DumpJSON error").Error()
	}

	return string(tBytes)
}
