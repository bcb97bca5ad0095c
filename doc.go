// Package iamf decodes an IAMF (Immersive Audio Model and Formats)
// bitstream: it parses descriptor OBUs into a database, decodes audio
// frames through caller-supplied codec adapters, reconstructs the
// scalable channel ladder via demixing and recon-gain, renders and mixes
// a chosen mix presentation to a chosen output layout, and quantizes the
// result to interleaved integer PCM.
//
// A Decoder instance maintains internal state and is NOT safe for
// concurrent use; each goroutine decoding a stream should own its own
// Decoder.
package iamf
