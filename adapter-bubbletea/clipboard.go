package adapter_bubbletea

import (
	"github.com/atotto/clipboard"

	"github.com/ionut-t/miv/core"
	"github.com/ionut-t/miv/internal/log"
)

// SystemClipboard reaches the desktop clipboard through xclip, xsel,
// wl-clipboard, pbcopy or the Windows API.
type SystemClipboard struct{}

func (c SystemClipboard) Write(text string) error {
	if clipboard.Unsupported {
		return core.ErrClipboardUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		log.ErrorErr(log.CatClipboard, "write failed", err)
		return err
	}
	log.Debug(log.CatClipboard, "written", "bytes", len(text))
	return nil
}

func (c SystemClipboard) Read() (string, error) {
	if clipboard.Unsupported {
		return "", core.ErrClipboardUnavailable
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		log.ErrorErr(log.CatClipboard, "read failed", err)
		return "", err
	}
	return text, nil
}
