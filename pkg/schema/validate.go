package schema

// Schema maps response field names to their required types.
// Every field named in the schema must be present and conforming; extra
// fields in the response are allowed and ignored.
type Schema map[string]Type

// Validate checks data against the schema and returns all failures at once
// as an *AggregateError. A nil or empty schema accepts anything.
func Validate(s Schema, data map[string]any) error {
	if len(s) == 0 {
		return nil
	}

	var errs []error
	for field, typ := range s {
		value, ok := data[field]
		if !ok {
			errs = append(errs, &ValidationError{Key: field, Reason: "required"})
			continue
		}
		if err := typ.Validate(value); err != nil {
			errs = append(errs, &ValidationError{Key: field, Reason: err.Error(), Value: value})
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}
