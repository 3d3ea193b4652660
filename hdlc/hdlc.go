package hdlc

import (
	"errors"
)

// IEEE-standard sentinel values used by DefaultSpecialChars.
const (
	defaultFend  = 0x7e
	defaultFesc  = 0x7d
	defaultTfend = 0x5e
	defaultTfesc = 0x5d
)

var (
	// DuplicateSpecialChar is the error that is returned when the four
	// configured special characters are not pairwise distinct.
	DuplicateSpecialChar = errors.New("Duplicate special character")

	// MissingFirstFend is the error that is returned when the input to a
	// decoder does not begin with the opening FEND byte.
	MissingFirstFend = errors.New("Missing first FEND character")

	// MissingFinalFend is the error that is returned when the input to a
	// decoder is exhausted before a closing FEND byte was consumed.
	MissingFinalFend = errors.New("Missing final FEND character")

	// FendCharInData is the error that is returned when a FEND byte occurs
	// before the final byte of the input.
	FendCharInData = errors.New("FEND character in data")

	// MissingTradeChar is the error that is returned when the byte following
	// a FESC is neither TFEND nor TFESC.
	MissingTradeChar = errors.New("Missing trade character")
)

// SpecialChars holds the four byte values that the encoder and decoders
// treat specially.  The struct is a plain value; it carries no state and is
// passed by copy to every call.  The four values must be pairwise distinct,
// which is checked at the start of every encode or decode call rather than
// at construction time.
type SpecialChars struct {
	// Fend marks the beginning and end of every frame.
	Fend byte
	// Fesc introduces a two-byte escape pair inside a frame.
	Fesc byte
	// Tfend is substituted for Fend inside escaped data.
	Tfend byte
	// Tfesc is substituted for Fesc inside escaped data.
	Tfesc byte
}

// DefaultSpecialChars returns the IEEE-standard special character values:
// FEND 0x7E, FESC 0x7D, TFEND 0x5E, TFESC 0x5D.
func DefaultSpecialChars() SpecialChars {
	return SpecialChars{
		Fend:  defaultFend,
		Fesc:  defaultFesc,
		Tfend: defaultTfend,
		Tfesc: defaultTfesc,
	}
}

// NewSpecialChars returns a SpecialChars with the given values.  No
// validation happens here; Encode, Decode, and DecodeSlice reject duplicate
// values themselves.
func NewSpecialChars(fend, fesc, tfend, tfesc byte) SpecialChars {
	return SpecialChars{Fend: fend, Fesc: fesc, Tfend: tfend, Tfesc: tfesc}
}

// validate checks that the four special characters are pairwise distinct.
// Duplicate values would make the escaping rule ambiguous, so every
// operation runs this before touching any data.
func (s SpecialChars) validate() error {
	seen := make(map[byte]bool, 4)
	for _, c := range []byte{s.Fend, s.Fesc, s.Tfend, s.Tfesc} {
		if seen[c] {
			return DuplicateSpecialChar
		}
		seen[c] = true
	}
	return nil
}

// Encode frames data, returning a newly allocated frame of the form
// FEND, escaped data, FEND.  Every data byte equal to Fesc is replaced by
// the pair (Fesc, Tfesc), and every data byte equal to Fend by the pair
// (Fesc, Tfend); all other bytes pass through unchanged.  Encoding never
// fails on data content; the only possible error is DuplicateSpecialChar.
func Encode(data []byte, s SpecialChars) ([]byte, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	// Worst case every byte escapes, plus the two delimiters.
	output := make([]byte, 0, 2*len(data)+2)
	output = append(output, s.Fend)
	for _, b := range data {
		switch b {
		case s.Fesc:
			output = append(output, s.Fesc, s.Tfesc)
		case s.Fend:
			output = append(output, s.Fesc, s.Tfend)
		default:
			output = append(output, b)
		}
	}
	output = append(output, s.Fend)

	return output, nil
}

// Decode unframes input, returning a newly allocated copy of the original
// payload.  The input must be exactly one complete frame: an opening FEND,
// the escaped payload, and a closing FEND as the very last byte.
//
// Malformed input is rejected with MissingFirstFend (input does not begin
// with FEND), FendCharInData (a FEND before the final byte), MissingTradeChar
// (a FESC followed by a byte that is neither TFEND nor TFESC), or
// MissingFinalFend (input ran out before the closing FEND).  On error no
// partially decoded payload is returned.
func Decode(input []byte, s SpecialChars) ([]byte, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	if len(input) == 0 || input[0] != s.Fend {
		return nil, MissingFirstFend
	}

	output := make([]byte, 0, len(input))
	for i := 1; i < len(input); i++ {
		switch input[i] {
		case s.Fesc:
			i++
			if i == len(input) {
				return nil, MissingFinalFend
			}
			switch input[i] {
			case s.Tfend:
				output = append(output, s.Fend)
			case s.Tfesc:
				output = append(output, s.Fesc)
			default:
				return nil, MissingTradeChar
			}
		case s.Fend:
			if i != len(input)-1 {
				return nil, FendCharInData
			}
			return output, nil
		default:
			output = append(output, input[i])
		}
	}

	return nil, MissingFinalFend
}

// DecodeSlice unframes input in place and returns the decoded payload as a
// sub-slice of input, without allocating a result buffer.  It accepts and
// rejects exactly the same inputs as Decode.
//
// Unescaping only ever shrinks the data, so decoded bytes are written back
// into input behind the read position and the payload ends up at input[:n].
// The caller keeps ownership of input; bytes beyond the returned sub-slice
// are left in an unspecified state and must not be read as payload.  The
// call needs exclusive access to input for its duration.
func DecodeSlice(input []byte, s SpecialChars) ([]byte, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	if len(input) == 0 || input[0] != s.Fend {
		return nil, MissingFirstFend
	}

	// w trails the read index by the number of bytes dropped so far, so a
	// write to input[w] never clobbers an unread byte.
	w := 0
	for i := 1; i < len(input); i++ {
		switch input[i] {
		case s.Fesc:
			i++
			if i == len(input) {
				return nil, MissingFinalFend
			}
			switch input[i] {
			case s.Tfend:
				input[w] = s.Fend
			case s.Tfesc:
				input[w] = s.Fesc
			default:
				return nil, MissingTradeChar
			}
			w++
		case s.Fend:
			if i != len(input)-1 {
				return nil, FendCharInData
			}
			return input[:w], nil
		default:
			input[w] = input[i]
			w++
		}
	}

	return nil, MissingFinalFend
}
