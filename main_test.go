// main_test.go
package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathyslv/pnger-go/cmd"
)

// writeTestPNG writes a deterministic w×h gradient PNG to path.
func writeTestPNG(t *testing.T, path string, w, h int) {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 0x80, A: 0xFF})
		}
	}

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestRun_EmbedThenExtractRoundtrip(t *testing.T) {
	is := assert.New(t)
	dir := t.TempDir()

	inputPNG := filepath.Join(dir, "in.png")
	outputPNG := filepath.Join(dir, "out.png")
	payloadFile := filepath.Join(dir, "payload.txt")
	recoveredFile := filepath.Join(dir, "recovered.txt")

	writeTestPNG(t, inputPNG, 32, 32)
	require.NoError(t, os.WriteFile(payloadFile, []byte("hello from pnger"), 0o644))

	os.Args = []string{"pnger", "embed", "-i", inputPNG, "-p", payloadFile, "-o", outputPNG, "--lsb-pattern", "linear"}
	var embedOut bytes.Buffer
	cmd.RootCmd.SetOut(&embedOut)
	cmd.RootCmd.SetErr(&embedOut)
	is.NoError(run())

	os.Args = []string{"pnger", "extract", "-i", outputPNG, "-o", recoveredFile, "--lsb-pattern", "linear"}
	var extractOut bytes.Buffer
	cmd.RootCmd.SetOut(&extractOut)
	cmd.RootCmd.SetErr(&extractOut)
	is.NoError(run())

	recovered, err := os.ReadFile(recoveredFile)
	is.NoError(err)
	is.Equal("hello from pnger", string(recovered))
}

func TestRun_VersionCommand(t *testing.T) {
	is := assert.New(t)

	os.Args = []string{"pnger", "version"}
	var outBuf bytes.Buffer
	cmd.RootCmd.SetOut(&outBuf)
	cmd.RootCmd.SetErr(&outBuf)

	is.NoError(run())
	is.Contains(outBuf.String(), "version:")
	is.Contains(outBuf.String(), "commit:")
}

func TestRun_InvalidCommand(t *testing.T) {
	is := assert.New(t)

	os.Args = []string{"pnger", "invalidcmd"}
	var outBuf bytes.Buffer
	cmd.RootCmd.SetOut(&outBuf)
	cmd.RootCmd.SetErr(&outBuf)

	err := run()
	is.Error(err)
}
