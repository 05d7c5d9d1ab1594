package configs

import "errors"

// First returns the first value at path, or the zero value if absent.
// Other errors panic; a broken config file is not recoverable.
func First[T any](loader Loader, path string) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value
		}
		panic(err)
	}
	return value
}
