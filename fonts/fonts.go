package fonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Bold    FontName = "bold"
	Title   FontName = "title"
	Small   FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts    = map[FontName]font.Face{}
	loadOnce sync.Once
)

// LoadDefaults registers the bundled Go fonts under every name.
func LoadDefaults() {
	loadOnce.Do(func() {
		LoadFontWithSize(Regular, goregular.TTF, 14)
		LoadFontWithSize(Small, goregular.TTF, 11)
		LoadFontWithSize(Bold, gobold.TTF, 16)
		LoadFontWithSize(Title, gobold.TTF, 32)
	})
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		// Keep text visible with the fixed bitmap face.
		fonts[name] = basicfont.Face7x13
		return
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
