package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
)

// TranslationAdapter loads translations as language → nested key map.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves an in-memory map.
type MapAdapter struct {
	Data map[string]map[string]any
}

func NewMapAdapter(data map[string]map[string]any) *MapAdapter {
	return &MapAdapter{Data: data}
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FileAdapter reads translation files from a file system, which may be an
// embed.FS or os.DirFS. Each path is a file or a directory whose supported
// files are read in name order. Later files override earlier keys.
type FileAdapter struct {
	fsys  fs.FS
	paths []string
}

func NewFileAdapter(fsys fs.FS, paths ...string) *FileAdapter {
	if len(paths) == 0 {
		paths = []string{"."}
	}
	return &FileAdapter{fsys: fsys, paths: paths}
}

func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a.fsys == nil {
		return nil, fmt.Errorf("%w: nil file system", ErrFailedToReadFile)
	}

	all := make(map[string]map[string]any)
	loaded := 0
	for _, p := range a.paths {
		files, err := a.expand(p)
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			if err := ctx.Err(); err != nil {
				return nil, errors.Join(ErrLoadingCancelled, err)
			}
			trans, err := a.loadFile(ctx, file)
			if err != nil {
				return nil, err
			}
			mergeInto(all, trans)
			loaded++
		}
	}

	if loaded == 0 {
		return nil, fmt.Errorf("%w in %v", ErrNoTranslations, a.paths)
	}
	return all, nil
}

// expand returns p itself, or the supported files of directory p.
func (a *FileAdapter) expand(p string) ([]string, error) {
	info, err := fs.Stat(a.fsys, p)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	if !info.IsDir() {
		return []string{p}, nil
	}

	entries, err := fs.ReadDir(a.fsys, p)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && NewParserForFile(e.Name()) != nil {
			files = append(files, path.Join(p, e.Name()))
		}
	}
	return files, nil
}

func (a *FileAdapter) loadFile(ctx context.Context, file string) (map[string]map[string]any, error) {
	parser := NewParserForFile(file)
	if parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, file)
	}

	content, err := fs.ReadFile(a.fsys, file)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrNoTranslations, file)
	}

	trans, err := parser.Parse(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return trans, nil
}

// MultiAdapter layers adapters; later adapters override earlier keys.
type MultiAdapter []TranslationAdapter

func (m MultiAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	all := make(map[string]map[string]any)
	for _, a := range m {
		if a == nil {
			continue
		}
		trans, err := a.Load(ctx)
		if err != nil {
			return nil, err
		}
		mergeInto(all, trans)
	}
	return all, nil
}

func mergeInto(dst, src map[string]map[string]any) {
	for lang, keys := range src {
		if dst[lang] == nil {
			dst[lang] = make(map[string]any, len(keys))
		}
		mergeKeys(dst[lang], keys)
	}
}

func mergeKeys(dst, src map[string]any) {
	for k, v := range src {
		sub, ok := v.(map[string]any)
		cur, curOK := dst[k].(map[string]any)
		if ok && curOK {
			mergeKeys(cur, sub)
			continue
		}
		if ok {
			cp := make(map[string]any, len(sub))
			mergeKeys(cp, sub)
			dst[k] = cp
			continue
		}
		dst[k] = v
	}
}
