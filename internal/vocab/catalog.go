package vocab

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ProgressFileName is skipped when scanning a data directory for categories.
const ProgressFileName = "progress.json"

// Category pairs a display name with its loaded pool.
type Category struct {
	Name string
	Pool Pool
}

// Catalog holds every loaded category, keyed and ordered by name.
type Catalog struct {
	categories []Category
	byName     map[string]Pool
}

// LoadCatalog scans dir for *.json vocabulary files (excluding the progress
// file) and loads each one. Category names derive from file names:
// "native_numbers.json" becomes "Native Numbers". A directory with no
// vocabulary files is an error; a single bad file fails the whole load so
// the caller can surface the exact file.
func LoadCatalog(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read data dir: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) != ".json" || name == ProgressFileName {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	if len(names) == 0 {
		return nil, fmt.Errorf("no vocabulary files found in %s", dir)
	}

	cat := &Catalog{byName: make(map[string]Pool, len(names))}
	for _, name := range names {
		pool, err := Load(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		display := DisplayName(name)
		cat.categories = append(cat.categories, Category{Name: display, Pool: pool})
		cat.byName[display] = pool
	}
	return cat, nil
}

// DisplayName converts a vocabulary file name to a category display name.
func DisplayName(fileName string) string {
	base := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	words := strings.FieldsFunc(base, func(r rune) bool {
		return r == '_' || r == '-'
	})
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// Names returns the category names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.categories))
	for i, cat := range c.categories {
		names[i] = cat.Name
	}
	return names
}

// Pool returns the pool for a category name.
func (c *Catalog) Pool(name string) (Pool, bool) {
	pool, ok := c.byName[name]
	return pool, ok
}

// Len returns the number of categories.
func (c *Catalog) Len() int {
	return len(c.categories)
}
