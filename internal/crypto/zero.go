package crypto

// Zero overwrites b with zero bytes. Used to wipe key material at a
// deterministic point (lock, logout, abandoned derivation) instead of
// waiting for the garbage collector.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
