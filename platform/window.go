// Package platform runs a drift world inside an Ebiten window.
//
// It owns everything the simulation treats as a black box: window creation,
// the frame loop, gamepad enumeration and drawing filled squares.
package platform

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/drift/config"
)

// GraphicsLibrary maps a backend name from the config to Ebiten's selector.
func GraphicsLibrary(name string) (ebiten.GraphicsLibrary, error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return ebiten.GraphicsLibraryAuto, nil
	case "opengl":
		return ebiten.GraphicsLibraryOpenGL, nil
	case "directx":
		return ebiten.GraphicsLibraryDirectX, nil
	case "metal":
		return ebiten.GraphicsLibraryMetal, nil
	default:
		return ebiten.GraphicsLibraryAuto, fmt.Errorf("unknown graphics backend %q", name)
	}
}

// ApplyWindow configures the Ebiten window from w. It must run before RunGame.
func ApplyWindow(w config.Window) {
	ebiten.SetWindowTitle(w.Title)
	ebiten.SetWindowSize(w.Width, w.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(w.TPS)
}

// RunOptions builds the Ebiten run options for w.
func RunOptions(w config.Window) (*ebiten.RunGameOptions, error) {
	lib, err := GraphicsLibrary(w.Backend)
	if err != nil {
		return nil, err
	}
	return &ebiten.RunGameOptions{
		GraphicsLibrary: lib,
	}, nil
}
