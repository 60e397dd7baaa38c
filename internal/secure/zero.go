// Package secure provides best-effort scrubbing of secret material held
// in byte slices and fixed-size arrays. There is no third-party
// equivalent of Rust's zeroize crate anywhere in the Go ecosystem this
// module draws on, so this is the one piece of the ambient stack built
// directly on the standard library.
package secure

import "runtime"

// Zero overwrites every byte of b with 0. The byte-at-a-time loop (rather
// than clear(b) or a single copy) plus the trailing KeepAlive call keep
// the compiler from recognizing the store as dead and eliding it, which
// is the same concern Rust's #[zeroize(drop)] addresses on the other
// side of this port.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
