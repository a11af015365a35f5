//go:build montgomery_debug

package montgomery

// checkAliasing enables the aliasing assertions of the primitive layer.
const checkAliasing = true
