//go:build !montgomery_debug

package montgomery

const checkAliasing = false
