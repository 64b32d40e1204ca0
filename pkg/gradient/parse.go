package gradient

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	cosmicerrors "github.com/alexisbeaulieu97/cosmicui/pkg/errors"
)

var rgbFuncPattern = regexp.MustCompile(`^rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)$`)

// ParseColor accepts #rgb, #rrggbb, rgb(r,g,b) and CSS color names.
func ParseColor(value string) (RGB, error) {
	s := strings.ToLower(strings.TrimSpace(value))
	if s == "" {
		return RGB{}, cosmicerrors.NewColorError(value, errors.New("empty color"))
	}

	if strings.HasPrefix(s, "#") {
		if len(s) != 4 && len(s) != 7 {
			return RGB{}, cosmicerrors.NewColorError(value, errors.New("hex colors need 3 or 6 digits"))
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return RGB{}, cosmicerrors.NewColorError(value, err)
		}
		r, g, b := c.RGB255()
		return RGB{R: r, G: g, B: b}, nil
	}

	if m := rgbFuncPattern.FindStringSubmatch(s); m != nil {
		var channels [3]uint8
		for i := 0; i < 3; i++ {
			n, err := strconv.Atoi(m[i+1])
			if err != nil || n > 255 {
				return RGB{}, cosmicerrors.NewColorError(value, errors.New("channel out of range"))
			}
			channels[i] = uint8(n)
		}
		return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
	}

	if named, ok := colornames.Map[s]; ok {
		return FromColor(named), nil
	}

	return RGB{}, cosmicerrors.NewColorError(value, errors.New("unrecognised format"))
}

// MustParseColor is like ParseColor but panics on error. Intended for literals.
func MustParseColor(value string) RGB {
	c, err := ParseColor(value)
	if err != nil {
		panic(err)
	}
	return c
}
