package console

import "errors"

// Result is the uniform outcome the console surfaces for every manager
// operation: either data, or a message plus optional per-field errors.
type Result[T any] struct {
	Success bool
	Data    T
	Message string
	Fields  map[string]string
}

func ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

func fail[T any](err error) Result[T] {
	res := Result[T]{}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		res.Message = apiErr.Message
		res.Fields = apiErr.Fields
		if res.Message == "" && len(res.Fields) > 0 {
			res.Message = "validation failed"
		}
		return res
	}

	res.Message = "could not reach the server"
	if err != nil && err.Error() != "" {
		res.Message = err.Error()
	}
	return res
}
