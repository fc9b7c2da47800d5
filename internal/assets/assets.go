// Package assets provides the two texts the bit widget switches between.
//
// Two sets are embedded: glyph art and plain labels. Either text can be
// replaced by a file on disk.
package assets

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"github.com/togglebit/togglebit/internal/errors"
)

//go:embed art/*.txt label/*.txt
var files embed.FS

// Display selects which embedded set is used.
type Display string

const (
	DisplayArt   Display = "art"
	DisplayLabel Display = "label"
)

// ParseDisplay converts a config value into a Display. Empty means art.
func ParseDisplay(s string) (Display, error) {
	switch Display(strings.ToLower(strings.TrimSpace(s))) {
	case "", DisplayArt:
		return DisplayArt, nil
	case DisplayLabel:
		return DisplayLabel, nil
	}
	return DisplayArt, errors.New(errors.ErrConfig,
		fmt.Sprintf("'%s' isn't a display mode", s),
		"Use one of: art, label")
}

// Set is a pair of off/on texts.
type Set struct {
	Off string
	On  string
}

// Overrides names files that replace the embedded texts. Empty paths keep
// the embedded text.
type Overrides struct {
	Off string
	On  string
}

// Embedded returns the built-in set for the display mode.
func Embedded(d Display) (Set, error) {
	dir := string(d)
	if d == "" {
		dir = string(DisplayArt)
	}

	off, err := files.ReadFile(dir + "/off.txt")
	if err != nil {
		return Set{}, errors.WrapWithCode(err, errors.ErrAsset,
			fmt.Sprintf("No built-in art for display '%s'", dir),
			"Use one of: art, label")
	}
	on, err := files.ReadFile(dir + "/on.txt")
	if err != nil {
		return Set{}, errors.WrapWithCode(err, errors.ErrAsset,
			fmt.Sprintf("No built-in art for display '%s'", dir),
			"Use one of: art, label")
	}

	return Set{Off: trim(string(off)), On: trim(string(on))}, nil
}

// Load returns the embedded set for d with any overrides read from disk.
// A missing or empty override file is an error.
func Load(d Display, o Overrides) (Set, error) {
	set, err := Embedded(d)
	if err != nil {
		return Set{}, err
	}

	if o.Off != "" {
		if set.Off, err = readFile(o.Off, "assets.off"); err != nil {
			return Set{}, err
		}
	}
	if o.On != "" {
		if set.On, err = readFile(o.On, "assets.on"); err != nil {
			return Set{}, err
		}
	}

	return set, nil
}

func readFile(path, key string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrAsset,
			fmt.Sprintf("Can't read art file %s", path),
			fmt.Sprintf("Check %s in your config points at a readable file", key))
	}

	text := trim(string(data))
	if text == "" {
		return "", errors.New(errors.ErrAsset,
			fmt.Sprintf("Art file %s is empty", path),
			fmt.Sprintf("Put at least one character in it or unset %s", key))
	}
	return text, nil
}

// trim drops trailing newlines so the art doesn't grow a blank last row.
func trim(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.TrimRight(s, "\n")
}
