package wire

import (
	"reflect"
	"testing"

	marketdata "interop/internal/domain/entity/marketdata"
	"interop/internal/infrastructure/wire/wiretest"
)

func TestParseFormat(t *testing.T) {
	cases := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "flatbuffers", want: FormatFlatBuffers},
		{in: " FlatBuffers ", want: FormatFlatBuffers},
		{in: "fbs", want: FormatFlatBuffers},
		{in: "protobuf", want: FormatProtobuf},
		{in: "pb", want: FormatProtobuf},
		{in: "", wantErr: true},
		{in: "json", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseFormat(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseFormat(%q) = %q, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("ParseFormat(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestFormatsDecodeToTheSameBatch(t *testing.T) {
	var decoded []marketdata.EventBatch
	for _, format := range Formats {
		enc, err := NewEncoder(format, wiretest.ScenarioPacker)
		if err != nil {
			t.Fatalf("NewEncoder(%s): %v", format, err)
		}
		dec, err := NewDecoder(format, nil, nil)
		if err != nil {
			t.Fatalf("NewDecoder(%s): %v", format, err)
		}

		buf, err := enc.Encode(wiretest.ScenarioBatch())
		if err != nil {
			t.Fatalf("%s Encode: %v", format, err)
		}
		batch, err := dec.Decode(buf)
		if err != nil {
			t.Fatalf("%s Decode: %v", format, err)
		}
		if !reflect.DeepEqual(batch, wiretest.ScenarioBatch()) {
			t.Fatalf("%s Decode = %+v", format, batch)
		}
		decoded = append(decoded, batch)
	}

	if !reflect.DeepEqual(decoded[0], decoded[1]) {
		t.Fatal("formats disagree on the scenario batch")
	}
}

func TestUnknownFormat(t *testing.T) {
	if _, err := NewDecoder("xml", nil, nil); err == nil {
		t.Fatal("NewDecoder accepted an unknown format")
	}
	if _, err := NewEncoder("xml", nil); err == nil {
		t.Fatal("NewEncoder accepted an unknown format")
	}
}
