//go:build tools

package mobile

// gomobile bind 需要 x/mobile/bind 在模块依赖里
import _ "golang.org/x/mobile/bind"
