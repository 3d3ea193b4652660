// Package hdlc implements HDLC-style byte-stuffing framing.  A payload is
// wrapped in FEND delimiter bytes, and any payload byte that collides with
// the FEND or FESC sentinels is replaced by a two-byte escape pair, so that
// the delimiter never appears inside a frame.  The default sentinel values
// follow the IEEE standard (FEND 0x7E, FESC 0x7D, TFEND 0x5E, TFESC 0x5D),
// but any four distinct byte values can be used.
//
// This package only frames data: there is no bit-stuffing, no checksum, and
// no address or control fields.  Each call encodes or decodes exactly one
// frame; splitting a byte stream into frames is the caller's responsibility.
package hdlc
