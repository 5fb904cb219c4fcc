package icmp_test

import (
	"testing"

	"github.com/markrepedersen/netparser/icmp"
	"github.com/markrepedersen/netparser/parse"
)

func TestDecodeEchoRequest(t *testing.T) {
	buf := []byte{8, 0, 0x12, 0x34, 0x00, 0x01, 0x00, 0x02, 'p', 'i', 'n', 'g'}
	c := parse.NewCursor(buf)
	p, err := icmp.Decode(c)
	if err != nil {
		t.Fatal(err)
	}
	if p.Typ.Kind != icmp.KindEchoRequest {
		t.Fatalf("kind = %v", p.Typ.Kind)
	}
	if !p.Header.IsEcho || p.Header.Identifier != 1 || p.Header.Sequence != 2 {
		t.Fatalf("header = %+v", p.Header)
	}
	if string(p.Payload.Bytes()) != "ping" {
		t.Fatalf("payload = %q", p.Payload.Bytes())
	}
}

func TestDecodeDestinationUnreachable(t *testing.T) {
	buf := []byte{3, 1, 0, 0, 0, 0, 0, 0} // type=3 code=1 (host unreachable)
	c := parse.NewCursor(buf)
	p, err := icmp.Decode(c)
	if err != nil {
		t.Fatal(err)
	}
	if p.Typ.Kind != icmp.KindDestinationUnreachable {
		t.Fatalf("kind = %v", p.Typ.Kind)
	}
	if p.Typ.DestUnreachableCode != icmp.CodeHostUnreachable {
		t.Fatalf("code = %v", p.Typ.DestUnreachableCode)
	}
	if p.Header.IsEcho {
		t.Fatal("destination-unreachable header must not be echo-shaped")
	}
}

func TestDecodeOtherTypeUsesOpaqueHeader(t *testing.T) {
	buf := []byte{13, 0, 0, 0, 0xDE, 0xAD, 0xBE, 0xEF} // timestamp
	c := parse.NewCursor(buf)
	p, err := icmp.Decode(c)
	if err != nil {
		t.Fatal(err)
	}
	if p.Typ.Kind != icmp.KindOther {
		t.Fatalf("kind = %v", p.Typ.Kind)
	}
	if p.Header.IsEcho || p.Header.Opaque != 0xDEADBEEF {
		t.Fatalf("header = %+v", p.Header)
	}
}

func TestDecodeTooShortFails(t *testing.T) {
	c := parse.NewCursor([]byte{8, 0})
	_, err := icmp.Decode(c)
	if err == nil {
		t.Fatal("expected error")
	}
}
