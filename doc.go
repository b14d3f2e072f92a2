// Package ida implements a systematic Reed-Solomon forward error
// correction (FEC) code over GF(2^8), descended from Rabin's Information
// Dispersal Algorithm family of erasure codes.
//
// Given parameters k (required shares) and n (total shares), a *FEC
// deterministically expands a buffer of k*B bytes into n shares of B
// bytes each, such that any k of the n shares reconstruct the original
// buffer. The code is systematic: the first k shares are exact copies of
// the k input blocks, and the remaining n-k shares are parity blocks
// computed as GF(2^8) linear combinations of the input.
//
// [FEC.Encode] takes a buffer whose length is a multiple of k and invokes
// a callback once per generated share.
//
// [FEC.Decode] and [FEC.DecodeTo] take at least k previously generated
// shares and recover the original buffer, provided at most
// floor((n-k)/2) of the supplied shares have been corrupted at any given
// byte position. Corruption is located and repaired with the
// Berlekamp-Welch algorithm; [FEC.Correct] exposes that repair step on
// its own, and [FEC.Rebuild] exposes the reconstruction step assuming the
// shares are already known-good.
//
// [FEC.Consistent] is a caller-side convenience for filtering an unvetted
// pile of shares (for instance, gathered from unreliable peers) down to
// those agreeing with the majority on share length and carrying distinct,
// in-range Numbers before Correct/Decode ever see it.
package ida
