package pngme

import (
	"errors"
	"testing"
)

func TestChunkTypeFromBytes(t *testing.T) {
	t.Parallel()

	ct, err := ChunkTypeFromBytes([4]byte{82, 117, 83, 116})
	if err != nil {
		t.Fatalf("ChunkTypeFromBytes: %v", err)
	}
	if ct.Bytes() != [4]byte{82, 117, 83, 116} {
		t.Fatalf("Bytes() = %v", ct.Bytes())
	}
	if ct.String() != "RuSt" {
		t.Fatalf("String() = %q, want RuSt", ct.String())
	}

	if _, err := ChunkTypeFromBytes([4]byte{'R', 'u', '1', 't'}); !errors.Is(err, ErrInvalidChunkType) {
		t.Fatalf("expected ErrInvalidChunkType, got %v", err)
	}
}

func TestParseChunkTypeTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		wantErr []error
	}{
		{name: "mixed-case", in: "RuSt"},
		{name: "reserved-bit-set", in: "Rust"},
		{name: "digit", in: "Ru1t", wantErr: []error{ErrChunkTypeFormat, ErrInvalidChunkType}},
		{name: "short", in: "Rus", wantErr: []error{ErrChunkTypeFormat}},
		{name: "long", in: "RuStt", wantErr: []error{ErrChunkTypeFormat}},
		{name: "empty", in: "", wantErr: []error{ErrChunkTypeFormat}},
		{name: "non-ascii", in: "Ruß", wantErr: []error{ErrChunkTypeFormat, ErrInvalidChunkType}},
		{name: "space", in: "Ru t", wantErr: []error{ErrChunkTypeFormat, ErrInvalidChunkType}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ct, err := ParseChunkType(tc.in)
			if len(tc.wantErr) == 0 {
				if err != nil {
					t.Fatalf("ParseChunkType(%q): %v", tc.in, err)
				}
				if ct.String() != tc.in {
					t.Fatalf("String() = %q, want %q", ct.String(), tc.in)
				}
				return
			}
			for _, want := range tc.wantErr {
				if !errors.Is(err, want) {
					t.Fatalf("ParseChunkType(%q) error %v does not match %v", tc.in, err, want)
				}
			}
		})
	}
}

func TestChunkTypePropertyBits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in         string
		critical   bool
		public     bool
		reservedOK bool
		safeToCopy bool
		valid      bool
	}{
		{in: "RuSt", critical: true, public: false, reservedOK: true, safeToCopy: true, valid: true},
		{in: "Rust", critical: true, public: false, reservedOK: false, safeToCopy: true, valid: false},
		{in: "ruSt", critical: false, public: false, reservedOK: true, safeToCopy: true, valid: true},
		{in: "RUST", critical: true, public: true, reservedOK: true, safeToCopy: false, valid: true},
		{in: "IEND", critical: true, public: true, reservedOK: true, safeToCopy: false, valid: true},
		{in: "teXt", critical: false, public: false, reservedOK: true, safeToCopy: true, valid: true},
		{in: "tEXt", critical: false, public: true, reservedOK: true, safeToCopy: true, valid: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()

			ct, err := ParseChunkType(tc.in)
			if err != nil {
				t.Fatalf("ParseChunkType: %v", err)
			}
			if got := ct.IsCritical(); got != tc.critical {
				t.Fatalf("IsCritical() = %v, want %v", got, tc.critical)
			}
			if got := ct.IsPublic(); got != tc.public {
				t.Fatalf("IsPublic() = %v, want %v", got, tc.public)
			}
			if got := ct.IsReservedBitValid(); got != tc.reservedOK {
				t.Fatalf("IsReservedBitValid() = %v, want %v", got, tc.reservedOK)
			}
			if got := ct.IsSafeToCopy(); got != tc.safeToCopy {
				t.Fatalf("IsSafeToCopy() = %v, want %v", got, tc.safeToCopy)
			}
			if got := ct.IsValid(); got != tc.valid {
				t.Fatalf("IsValid() = %v, want %v", got, tc.valid)
			}
		})
	}
}

func TestChunkTypeZeroValueInvalid(t *testing.T) {
	t.Parallel()

	var ct ChunkType
	if ct.IsValid() {
		t.Fatalf("zero ChunkType reported valid")
	}
}

func TestChunkTypeEquality(t *testing.T) {
	t.Parallel()

	a := MustParseChunkType("RuSt")
	b, err := ChunkTypeFromBytes([4]byte{'R', 'u', 'S', 't'})
	if err != nil {
		t.Fatalf("ChunkTypeFromBytes: %v", err)
	}
	if a != b {
		t.Fatalf("expected equal chunk types")
	}
	if a == MustParseChunkType("Rust") {
		t.Fatalf("expected different chunk types")
	}
}
