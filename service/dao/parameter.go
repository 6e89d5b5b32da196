package dao

// Parameter is a named List criterion. Value holds either a single string or
// a slice of accepted values; stores interpret it through their filter.
type Parameter struct {
	Name  string
	Value interface{}
}

// NewParameter creates a criterion matching any of values
func NewParameter(name string, values ...string) *Parameter {
	if len(values) == 1 {
		return &Parameter{Name: name, Value: values[0]}
	}
	return &Parameter{Name: name, Value: values}
}

// Lookup returns the first parameter with the given name
func Lookup(parameters []*Parameter, name string) (*Parameter, bool) {
	for _, parameter := range parameters {
		if parameter != nil && parameter.Name == name {
			return parameter, true
		}
	}
	return nil, false
}
