package configs

import (
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var ErrValueNotFound = errors.New("value not found")

// Loader reads config files lazily. Files are looked up in the given order,
// so earlier files take precedence.
type Loader struct {
	getRoots func() ([]rootInfo, error)
}

func NewLoader(filePaths []string, schemaSrc string) Loader {
	return Loader{

		getRoots: sync.OnceValues(func() (ret []rootInfo, err error) {
			ctx := cuecontext.New()

			var schema cue.Value
			if schemaSrc != "" {
				schema = ctx.CompileString("close({" + schemaSrc + "})")
				if err := schema.Err(); err != nil {
					return nil, fmt.Errorf("schema: %w", err)
				}
			}

			for _, filePath := range filePaths {
				content, err := os.ReadFile(filePath)
				if err != nil {
					return nil, err
				}

				value, err := compile(ctx, filePath, content)
				if err != nil {
					return nil, err
				}
				if err := value.Err(); err != nil {
					return nil, err
				}

				if schema.Exists() {
					if err := schema.Unify(value).Validate(cue.Concrete(true)); err != nil {
						return nil, fmt.Errorf("%s: %w", filePath, err)
					}
				}

				ret = append(ret, rootInfo{
					value: value,
					path:  filePath,
				})
			}

			return
		}),
	}
}

func compile(ctx *cue.Context, filePath string, content []byte) (cue.Value, error) {
	var data map[string]any
	switch strings.ToLower(filepath.Ext(filePath)) {

	case ".toml":
		if err := toml.Unmarshal(content, &data); err != nil {
			return cue.Value{}, fmt.Errorf("%s: %w", filePath, err)
		}

	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &data); err != nil {
			return cue.Value{}, fmt.Errorf("%s: %w", filePath, err)
		}

	default:
		return ctx.CompileBytes(content, cue.Filename(filePath)), nil
	}

	if data == nil {
		data = make(map[string]any)
	}
	return ctx.Encode(data), nil
}

type rootInfo struct {
	value cue.Value
	path  string
}

// Err reports errors in reading, parsing or validating the config files.
func (l Loader) Err() error {
	if l.getRoots == nil {
		return nil
	}
	_, err := l.getRoots()
	return err
}

// Paths returns the files that loaded successfully.
func (l Loader) Paths() (ret []string) {
	if l.getRoots == nil {
		return nil
	}
	roots, err := l.getRoots()
	if err != nil {
		return nil
	}
	for _, info := range roots {
		ret = append(ret, info.path)
	}
	return
}

func (l Loader) IterCueValues(path string) iter.Seq2[*cue.Value, error] {
	return func(yield func(*cue.Value, error) bool) {
		if l.getRoots == nil {
			return
		}
		roots, err := l.getRoots()
		if err != nil {
			yield(nil, err)
			return
		}

		cuePath := cue.ParsePath(path)
		for _, info := range roots {
			value := info.value.LookupPath(cuePath)
			if value.Exists() {
				if !yield(&value, nil) {
					break
				}
			}
		}
	}
}

func (l Loader) AssignFirst(path string, target any) error {
	for value, err := range l.IterCueValues(path) {
		if err != nil {
			return err
		}
		if err := value.Decode(target); err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
		return nil
	}
	return ErrValueNotFound
}
