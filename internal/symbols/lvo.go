package symbols

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/beevik/prefixtree/v2"
)

// DefaultLibrary is the library whose vector offsets are resolved unless
// configured otherwise.
const DefaultLibrary = "exec"

// ErrUnknownLibrary is returned for library names without vector table.
var ErrUnknownLibrary = errors.New("unknown library")

// function is a library function at a negative offset from the library base.
type function struct {
	offset int16
	name   string
}

// libraries maps the library names to their offset tables.
var libraries = map[string][]function{
	"exec":      execFunctions,
	"dos":       dosFunctions,
	"intuition": intuitionFunctions,
	"graphics":  graphicsFunctions,
}

var libraryTree = newLibraryTree()

func newLibraryTree() *prefixtree.Tree[string] {
	tree := prefixtree.New[string]()
	for name := range libraries {
		tree.Add(name, name)
	}
	return tree
}

// LibraryNames returns the names of all libraries with vector tables.
func LibraryNames() []string {
	names := make([]string, 0, len(libraries))
	for name := range libraries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// LVO resolves library vector offsets of a single library.
type LVO struct {
	library   string
	functions []function
}

// NewLVO creates a resolver for the named library. Unique prefixes of the
// library names and the full names like "dos.library" are accepted.
func NewLVO(library string) (*LVO, error) {
	key := strings.ToLower(strings.TrimSpace(library))
	key = strings.TrimSuffix(key, ".library")
	if key == "" {
		key = DefaultLibrary
	}
	name, err := libraryTree.FindValue(key)
	if err != nil {
		return nil, fmt.Errorf("%w '%s': %w", ErrUnknownLibrary, library, err)
	}
	return &LVO{library: name, functions: libraries[name]}, nil
}

// Library returns the resolved library name.
func (l *LVO) Library() string {
	return l.library
}

// ResolveLVO returns the "_LVO" prefixed function name at offset.
func (l *LVO) ResolveLVO(offset int16) (string, bool) {
	i, ok := slices.BinarySearchFunc(l.functions, offset, func(f function, offset int16) int {
		return cmp.Compare(f.offset, offset)
	})
	if !ok {
		return "", false
	}
	return "_LVO" + l.functions[i].name, true
}

// ResolveAddress never resolves for library vector offsets.
func (l *LVO) ResolveAddress(uint32) (string, bool) {
	return "", false
}
