package clipboard

import (
	"github.com/atotto/clipboard"

	"github.com/arjunvelu/vimcore/internal/log"
)

// SystemClipboard bridges the register to the OS clipboard via
// atotto/clipboard. A read error is treated as an empty register rather
// than surfaced to the action layer, and a write error is a silent
// no-op (the in-process linewise flag still updates so Paste stays
// consistent within a single session even when the OS call fails, e.g.
// headless CI or a missing xclip/xsel binary).
type SystemClipboard struct {
	linewise bool
}

// NewSystem returns a clipboard backed by the host OS.
func NewSystem() *SystemClipboard {
	return &SystemClipboard{}
}

func (c *SystemClipboard) GetText() string {
	text, err := clipboard.ReadAll()
	if err != nil {
		log.Warn(log.CatBuffer, "system clipboard read failed", "error", err)
		return ""
	}
	return text
}

func (c *SystemClipboard) SetText(text string) {
	if err := clipboard.WriteAll(text); err != nil {
		log.Warn(log.CatBuffer, "system clipboard write failed", "error", err)
	}
}

func (c *SystemClipboard) SetLinewise(linewise bool) { c.linewise = linewise }

func (c *SystemClipboard) IsLinewise() bool { return c.linewise }
