package tilewall

import (
	"embed"
	"fmt"

	"github.com/leonelquinteros/gotext"
)

//go:embed locales/*.po
var localeFS embed.FS

// Notice keys. Each maps to a translated, user-facing message.
const (
	NoticeNoSpace     = "NOTICE_NO_SPACE"
	NoticeTileRemoved = "NOTICE_TILE_REMOVED"
	NoticeInvalidDrop = "NOTICE_INVALID_DROP"
	NoticeRingAdded   = "NOTICE_RING_ADDED"
)

// Notice is a short message for the user, raised by the engine after a
// recoverable failure or a notable action.
type Notice struct {
	Key  string
	Text string
}

// Catalog translates notice keys.
type Catalog struct {
	lang string
	po   *gotext.Po
}

// Languages lists the embedded catalogs.
func Languages() []string { return []string{"en", "fa"} }

// LoadCatalog loads the embedded catalog for lang.
func LoadCatalog(lang string) (*Catalog, error) {
	data, err := localeFS.ReadFile("locales/" + lang + ".po")
	if err != nil {
		return nil, fmt.Errorf("load catalog %q: %w", lang, err)
	}
	po := gotext.NewPo()
	po.Parse(data)
	return &Catalog{lang: lang, po: po}, nil
}

// Lang returns the catalog's language code.
func (c *Catalog) Lang() string { return c.lang }

// Notice builds the translated notice for key. Unknown keys come back
// untranslated. With args the translation is used as a fmt format.
func (c *Catalog) Notice(key string, args ...any) Notice {
	text := c.po.Get(key)
	if len(args) > 0 {
		text = fmt.Sprintf(text, args...)
	}
	return Notice{Key: key, Text: text}
}
