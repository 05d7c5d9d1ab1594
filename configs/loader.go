package configs

import (
	"fmt"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Loader reads CUE files lazily. Earlier files take precedence.
type Loader struct {
	paths []string
	load  func() ([]cue.Value, error)
}

func NewLoader(paths []string, schema string) Loader {
	return Loader{
		paths: paths,
		load: sync.OnceValues(func() ([]cue.Value, error) {
			ctx := cuecontext.New()

			var schemaValue cue.Value
			if schema != "" {
				schemaValue = ctx.CompileString("close({" + schema + "})")
				if err := schemaValue.Err(); err != nil {
					return nil, fmt.Errorf("compile schema: %w", err)
				}
			}

			values := make([]cue.Value, 0, len(paths))
			for _, path := range paths {
				content, err := os.ReadFile(path)
				if err != nil {
					return nil, err
				}
				value := ctx.CompileBytes(content, cue.Filename(path))
				if err := value.Err(); err != nil {
					return nil, fmt.Errorf("compile %s: %w", path, err)
				}
				if schemaValue.Exists() {
					if err := schemaValue.Unify(value).Validate(); err != nil {
						return nil, fmt.Errorf("validate %s: %w", path, err)
					}
				}
				values = append(values, value)
			}
			return values, nil
		}),
	}
}

func (l Loader) Paths() []string {
	return l.paths
}

// AssignFirst decodes the first value found at path into target.
func (l Loader) AssignFirst(path string, target any) error {
	if l.load == nil {
		return ErrValueNotFound
	}
	values, err := l.load()
	if err != nil {
		return err
	}
	cuePath := cue.ParsePath(path)
	for _, root := range values {
		value := root.LookupPath(cuePath)
		if !value.Exists() {
			continue
		}
		if err := value.Decode(target); err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
		return nil
	}
	return fmt.Errorf("%w: %s", ErrValueNotFound, path)
}
