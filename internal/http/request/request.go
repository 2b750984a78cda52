package request

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Decode unmarshals the JSON body into dst and checks its validate tags.
func Decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("decoding body: %w", err)
	}

	if err := validate.Struct(dst); err != nil {
		return fmt.Errorf("validating body: %w", err)
	}

	return nil
}
