// Package display shows pipeline panels in on-screen windows.
//
// A Viewer opens one independently resizable window per panel, blocks until a
// key is pressed in any of them or the context is cancelled, then releases
// every window.
//
// Two backends exist:
//   - Fyne (default): the caller supplies the fyne.App, so the package builds
//     and tests without a GL driver
//   - OpenCV: highgui windows through gocv, compiled only with the gocv
//     build tag; without it NewOpenCV returns ErrOpenCVUnavailable
package display
