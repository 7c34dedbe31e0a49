//go:build !amd64 && !arm64

package hwy

func init() {
	currentLevel, currentWidth, currentName = DispatchScalar, 8, "scalar"
}
