package editor

import (
	"fmt"

	"github.com/iw2rmb/quill"
	"github.com/iw2rmb/quill/buffer"
)

// DefaultFiller marks screen rows below the end of the document.
const DefaultFiller = "~"

// Config configures the editor Model. The zero value is usable.
type Config struct {
	// Buffer to edit. nil starts with an empty, unnamed buffer.
	Buffer *buffer.Buffer

	// KeyMap decodes key messages into commands. A KeyMap without any
	// bindings is replaced with DefaultKeyMap().
	KeyMap KeyMap

	// Rendering options.
	Style  Style
	Filler string // default: DefaultFiller
	Banner string // default: DefaultBanner()
}

// DefaultBanner is the message shown in an empty document.
func DefaultBanner() string {
	return fmt.Sprintf("%s editor -- version %s", quill.Name, quill.Version())
}

func (c Config) withDefaults() Config {
	if c.Buffer == nil {
		c.Buffer = buffer.New()
	}
	if c.KeyMap.empty() {
		c.KeyMap = DefaultKeyMap()
	}
	if c.Filler == "" {
		c.Filler = DefaultFiller
	}
	if c.Banner == "" {
		c.Banner = DefaultBanner()
	}
	return c
}
