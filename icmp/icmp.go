// Package icmp decodes ICMPv4 messages (RFC 792): a 4-byte (type, code,
// checksum) header, a 4-byte header union that's either an Echo
// identifier/sequence pair or an opaque u32 depending on type, and
// whatever's left as payload.
package icmp

import (
	"fmt"

	"github.com/markrepedersen/netparser/common"
	"github.com/markrepedersen/netparser/parse"
)

// Type is the ICMP message type byte.
type Type uint8

const (
	TypeEchoReply Type = 0 // echo reply
	TypeEcho      Type = 8 // echo

	TypeDestinationUnreachable Type = 3 // destination unreachable
	TypeSourceQuench           Type = 4 // source quench
	TypeRedirect               Type = 5 // redirect

	TypeTimeExceeded     Type = 11 // time exceeded
	TypeParameterProblem Type = 12 // parameter problem

	TypeTimestamp      Type = 13 // timestamp
	TypeTimestampReply Type = 14 // timestamp reply

	TypeInfoRequest      Type = 15 // information request
	TypeInfoRequestReply Type = 16 // information request reply
)

func (t Type) String() string {
	switch t {
	case TypeEchoReply:
		return "echo reply"
	case TypeEcho:
		return "echo"
	case TypeDestinationUnreachable:
		return "destination unreachable"
	case TypeSourceQuench:
		return "source quench"
	case TypeRedirect:
		return "redirect"
	case TypeTimeExceeded:
		return "time exceeded"
	case TypeParameterProblem:
		return "parameter problem"
	case TypeTimestamp:
		return "timestamp"
	case TypeTimestampReply:
		return "timestamp reply"
	case TypeInfoRequest:
		return "information request"
	case TypeInfoRequestReply:
		return "information request reply"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// CodeTimeExceeded is the code byte when Type is TypeTimeExceeded.
type CodeTimeExceeded uint8

const (
	CodeExceededInTransit  CodeTimeExceeded = iota // TTL exceeded in transit
	CodeFragmentReassembly                         // fragment reassembly time exceeded
)

// CodeDestinationUnreachable is the code byte when Type is
// TypeDestinationUnreachable.
type CodeDestinationUnreachable uint8

const (
	CodeNetUnreachable     CodeDestinationUnreachable = iota // net unreachable
	CodeHostUnreachable                                      // host unreachable
	CodeProtoUnreachable                                     // protocol unreachable
	CodePortUnreachable                                      // port unreachable
	CodeFragNeededAndDFSet                                   // fragmentation needed and DF set
	CodeSourceRouteFailed                                    // source route failed
)

// Kind tags which variant of IcmpType a Packet carries.
type Kind uint8

const (
	KindEchoReply Kind = iota
	KindEchoRequest
	KindDestinationUnreachable
	KindTimeExceeded
	KindOther
)

// IcmpType is the decoded (type, code) pair, tagged by Kind so callers can
// switch on Kind without re-deriving it from the raw Type/Code bytes.
type IcmpType struct {
	Kind                Kind
	DestUnreachableCode CodeDestinationUnreachable // valid iff Kind == KindDestinationUnreachable
	TimeExceededCode    CodeTimeExceeded           // valid iff Kind == KindTimeExceeded
	RawType             Type
	RawCode             uint8
}

func classify(t Type, code uint8) IcmpType {
	it := IcmpType{RawType: t, RawCode: code}
	switch t {
	case TypeEchoReply:
		it.Kind = KindEchoReply
	case TypeEcho:
		it.Kind = KindEchoRequest
	case TypeDestinationUnreachable:
		it.Kind = KindDestinationUnreachable
		it.DestUnreachableCode = CodeDestinationUnreachable(code)
	case TypeTimeExceeded:
		it.Kind = KindTimeExceeded
		it.TimeExceededCode = CodeTimeExceeded(code)
	default:
		it.Kind = KindOther
	}
	return it
}

// Header is the 4-byte field following (type, code, checksum): either an
// Echo identifier/sequence pair (for Echo/EchoReply types) or an opaque
// 32-bit value for every other type.
type Header struct {
	IsEcho     bool
	Identifier uint16 // valid iff IsEcho
	Sequence   uint16 // valid iff IsEcho
	Opaque     uint32 // valid iff !IsEcho
}

// Packet is a fully-decoded ICMP message.
type Packet struct {
	Typ      IcmpType
	Checksum uint16
	Header   Header
	Payload  common.Blob
}

// Decode reads an ICMP message from c.
func Decode(c *parse.Cursor) (Packet, error) {
	return parse.Context(c, "ICMP packet", func(c *parse.Cursor) (Packet, error) {
		var p Packet
		rawType, err := c.U8()
		if err != nil {
			return p, err
		}
		rawCode, err := c.U8()
		if err != nil {
			return p, err
		}
		p.Typ = classify(Type(rawType), rawCode)
		if p.Checksum, err = c.BEU16(); err != nil {
			return p, err
		}
		isEcho := p.Typ.Kind == KindEchoReply || p.Typ.Kind == KindEchoRequest
		if isEcho {
			id, err := c.BEU16()
			if err != nil {
				return p, err
			}
			seq, err := c.BEU16()
			if err != nil {
				return p, err
			}
			p.Header = Header{IsEcho: true, Identifier: id, Sequence: seq}
		} else {
			opaque, err := c.BEU32()
			if err != nil {
				return p, err
			}
			p.Header = Header{Opaque: opaque}
		}
		payload := c.Remaining()
		if _, err := c.Take(len(payload)); err != nil {
			return p, err
		}
		p.Payload = common.NewBlob(payload)
		return p, nil
	})
}
