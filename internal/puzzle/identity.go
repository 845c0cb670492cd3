package puzzle

import (
	"fmt"
	"path/filepath"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

var typeNamePattern = regexp.MustCompile(`^Day(\d+)Part(\d+)$`)

// Identity locates an exercise part by year, day and part.
type Identity struct {
	Year int `json:"year"`
	Day  int `json:"day"`
	Part int `json:"part"`
}

// Name returns the compact form, e.g. "D07P02".
func (id Identity) Name() string {
	return fmt.Sprintf("D%02dP%02d", id.Day, id.Part)
}

// FullName returns the readable form, e.g. "Day 7, Part 2".
func (id Identity) FullName() string {
	return fmt.Sprintf("Day %d, Part %d", id.Day, id.Part)
}

// TypeName returns the type name an exercise part must declare, e.g. "Day7Part2".
func (id Identity) TypeName() string {
	return fmt.Sprintf("Day%dPart%d", id.Day, id.Part)
}

func (id Identity) String() string {
	return fmt.Sprintf("%04d/%s", id.Year, id.Name())
}

// Validate checks the ranges of every coordinate.
func (id Identity) Validate() error {
	if id.Year <= 0 {
		return &IdentityError{Kind: ErrInvalidYearFolder, Value: strconv.Itoa(id.Year)}
	}
	if id.Day < 1 || id.Day > 25 {
		return &IdentityError{Kind: ErrInvalidClassName, Value: id.TypeName(), Reason: "day must be between 1 and 25"}
	}
	if id.Part < 1 {
		return &IdentityError{Kind: ErrInvalidClassName, Value: id.TypeName(), Reason: "part must be at least 1"}
	}
	return nil
}

// ResolveIdentity derives an identity from a type name shaped like
// Day<day>Part<part> and the source file declaring it, whose parent
// directory must be named y<year>.
func ResolveIdentity(typeName, sourceFile string) (Identity, error) {
	m := typeNamePattern.FindStringSubmatch(typeName)
	if m == nil {
		return Identity{}, &IdentityError{Kind: ErrInvalidClassName, Value: typeName}
	}
	day, err := strconv.Atoi(m[1])
	if err != nil {
		return Identity{}, &IdentityError{Kind: ErrInvalidClassName, Value: typeName, Reason: err.Error()}
	}
	part, err := strconv.Atoi(m[2])
	if err != nil {
		return Identity{}, &IdentityError{Kind: ErrInvalidClassName, Value: typeName, Reason: err.Error()}
	}

	year, err := yearFromFolder(sourceFile)
	if err != nil {
		return Identity{}, err
	}

	id := Identity{Year: year, Day: day, Part: part}
	if err := id.Validate(); err != nil {
		return Identity{}, err
	}
	return id, nil
}

// IdentityOf resolves the identity of v from its dynamic type name.
// Pointer types resolve to the name of the pointed-to type.
func IdentityOf(v any, sourceFile string) (Identity, error) {
	return ResolveIdentity(TypeNameOf(v), sourceFile)
}

// TypeNameOf returns the declared name of v's dynamic type.
func TypeNameOf(v any) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return t.Name()
}

func yearFromFolder(sourceFile string) (int, error) {
	abs, err := filepath.Abs(sourceFile)
	if err != nil {
		return 0, &IdentityError{Kind: ErrInvalidYearFolder, Value: sourceFile, Reason: err.Error()}
	}
	folder := filepath.Base(filepath.Dir(abs))
	digits, ok := strings.CutPrefix(folder, "y")
	if !ok {
		return 0, &IdentityError{Kind: ErrInvalidYearFolder, Value: folder}
	}
	year, err := strconv.Atoi(digits)
	if err != nil || year <= 0 {
		return 0, &IdentityError{Kind: ErrInvalidYearFolder, Value: folder}
	}
	return year, nil
}
