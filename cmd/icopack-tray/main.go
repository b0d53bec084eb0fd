// Command icopack-tray keeps the converter one click away: a tray menu of
// recent conversions that re-runs any of them on click.
package main

import (
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"

	"github.com/energye/systray"
	"github.com/shtse8/icopack"
	"github.com/shtse8/icopack/internal/preset"
	"github.com/shtse8/icopack/internal/sample"
)

var version = ""

var (
	logPath    string
	presetPath string
	cfg        preset.Preset
)

type isoLogWriter struct{ w io.Writer }

func (lw isoLogWriter) Write(p []byte) (int, error) {
	return fmt.Fprintf(lw.w, "%s %s", time.Now().Format("2006-01-02 15:04:05"), p)
}

func displayVersion() string {
	if version != "" {
		return version
	}
	return "dev"
}

func main() {
	log.SetFlags(0)
	presetPath = preset.DefaultPath()
	dataDir := filepath.Dir(presetPath)
	os.MkdirAll(dataDir, 0o755)
	logPath = filepath.Join(dataDir, "log.txt")
	if f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		log.SetOutput(isoLogWriter{f})
	}
	log.Printf("icopack-tray %s starting", displayVersion())

	var err error
	if cfg, err = preset.Load(presetPath); err != nil {
		log.Printf("preset: %v, using defaults", err)
	}

	systray.Run(onReady, nil)
}

func onReady() {
	if data := trayIcon(); len(data) > 0 {
		systray.SetIcon(data)
	}
	systray.SetTooltip("icopack")

	mTitle := systray.AddMenuItem("icopack "+displayVersion(), "")
	mTitle.Disable()
	systray.AddMenuItem("Open log", "Open log file").Click(func() {
		openPath(logPath)
	})
	systray.AddSeparator()

	if len(cfg.Recent) == 0 {
		mNone := systray.AddMenuItem("No conversions yet", "")
		mNone.Disable()
	}
	for _, src := range cfg.Recent {
		item := systray.AddMenuItem(filepath.Base(src), "Convert "+src+" again")
		item.Click(func() { convert(src) })
	}

	systray.AddSeparator()

	mAutostart := systray.AddMenuItem("Start with Windows", "Launch icopack-tray at login")
	if autostartEnabled() {
		mAutostart.Check()
	}
	mAutostart.Click(func() { toggleAutostart(mAutostart) })

	systray.AddSeparator()
	systray.AddMenuItem("Quit", "Quit icopack-tray").Click(func() { systray.Quit() })
}

// trayIcon packs the sample disc at startup so the binary ships no asset.
func trayIcon() []byte {
	src := icopack.Source{Image: sample.Disc(32), Format: "png"}
	data, err := icopack.Pack(src, icopack.Options{})
	if err != nil {
		log.Printf("tray icon: %v", err)
		return nil
	}
	return data
}

func convert(srcPath string) {
	f, err := os.Open(srcPath)
	if err != nil {
		log.Printf("convert: %v", err)
		return
	}
	img, format, err := image.Decode(f)
	f.Close()
	if err != nil {
		log.Printf("convert: decode %s: %v", srcPath, err)
		return
	}

	data, err := icopack.Pack(icopack.Source{Image: img, Format: format}, icopack.Options{})
	if err != nil {
		log.Printf("convert: %s: %v", srcPath, err)
		return
	}

	out := icoPathFor(srcPath, cfg.OutDir)
	if err := os.WriteFile(out, data, 0o644); err != nil {
		log.Printf("convert: write %s: %v", out, err)
		return
	}
	log.Printf("converted %s -> %s (%d bytes)", srcPath, out, len(data))
	refreshIconCache()

	cfg.AddRecent(srcPath)
	if err := preset.Save(presetPath, cfg); err != nil {
		log.Printf("preset: save: %v", err)
	}
}

// icoPathFor maps a source image path to its .ico destination, honoring
// the preset's output directory when set.
func icoPathFor(src, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)) + ".ico"
	if outDir != "" {
		return filepath.Join(outDir, base)
	}
	return filepath.Join(filepath.Dir(src), base)
}

func toggleAutostart(m *systray.MenuItem) {
	if m.Checked() {
		if err := autostartDisable(); err != nil {
			log.Printf("failed to disable autostart: %v", err)
			return
		}
		m.Uncheck()
	} else {
		if err := autostartEnable(); err != nil {
			log.Printf("failed to enable autostart: %v", err)
			return
		}
		m.Check()
	}
}
