// Package tcp decodes TCP segments (RFC 793/9293): the fixed 20-byte
// header, the option area sized by data_offset, and whatever's left as
// payload. There is no connection state here — no retransmission, no
// sequencing, no SYN cookies: this package only ever sees one segment at
// a time and turns it into a value.
package tcp

import (
	"errors"
	"fmt"

	"github.com/markrepedersen/netparser/common"
	"github.com/markrepedersen/netparser/parse"
	"github.com/markrepedersen/netparser/width"
)

const headerSize = 20

// Flags is the 9-bit TCP control-bit field (NS..FIN), LSB-is-FIN.
type Flags uint16

const (
	FlagFIN Flags = 1 << iota // FIN
	FlagSYN                   // SYN
	FlagRST                   // RST
	FlagPSH                   // PSH
	FlagACK                   // ACK
	FlagURG                   // URG
	FlagECE                   // ECE
	FlagCWR                   // CWR
	FlagNS                    // NS
)

const flagMask = 0x01ff

// HasAll reports whether every bit in mask is set in flags.
func (flags Flags) HasAll(mask Flags) bool { return flags&mask == mask }

// HasAny reports whether any bit in mask is set in flags.
func (flags Flags) HasAny(mask Flags) bool { return flags&mask != 0 }

// String renders the set flags in FIN..NS order, e.g. "[SYN,ACK]".
func (flags Flags) String() string {
	flags &= flagMask
	if flags == 0 {
		return "[]"
	}
	names := [...]string{"FIN", "SYN", "RST", "PSH", "ACK", "URG", "ECE", "CWR", "NS"}
	out := "["
	first := true
	for i, name := range names {
		if flags&(1<<uint(i)) == 0 {
			continue
		}
		if !first {
			out += ","
		}
		out += name
		first = false
	}
	return out + "]"
}

// OptionKind identifies a TCP option's type byte, per the IANA registry.
// Obsolete kinds are kept unexported so the catalogue stays complete
// without suggesting callers match on them.
type OptionKind uint8

const (
	OptEnd                   OptionKind = iota // end of option list
	OptNop                                     // no-operation
	OptMaxSegmentSize                          // maximum segment size
	OptWindowScale                             // window scale
	OptSACKPermitted                           // SACK permitted
	OptSACK                                    // SACK
	OptEcho                                    // echo(obsolete)
	optEchoReply                               // echo reply(obsolete)
	OptTimestamps                              // timestamps
	optPOCP                                    // partial order connection permitted(obsolete)
	optPOSP                                    // partial order service profile(obsolete)
	optCC                                      // CC(obsolete)
	optCCnew                                   // CC.new(obsolete)
	optCCecho                                  // CC.echo(obsolete)
	optACR                                     // alternate checksum request(obsolete)
	optACD                                     // alternate checksum data(obsolete)
	optSkeeter                                 // skeeter
	optBubba                                   // bubba
	OptTrailerChecksum                         // trailer checksum
	optMD5Signature                            // MD5 signature(obsolete)
	OptSCPSCapabilities                        // SCPS capabilities
	OptSNA                                     // selective negative acks
	OptRecordBoundaries                        // record boundaries
	OptCorruptionExperienced                   // corruption experienced
	OptSNAP                                    // SNAP
	OptUnassigned                              // unassigned
	OptCompressionFilter                       // compression filter
	OptQuickStartResponse                      // quick-start response
	OptUserTimeout                             // user timeout or unauthorized use
	OptAuthentication                          // Authentication TCP-AO
	OptMultipath                               // multipath TCP
)

const (
	OptFastOpenCookie        OptionKind = 34  // fast open cookie
	OptEncryptionNegotiation OptionKind = 69  // encryption negotiation
	OptAccurateECN0          OptionKind = 172 // accurate ECN order 0
	OptAccurateECN1          OptionKind = 174 // accurate ECN order 1
)

// IsDefined reports whether kind is one of the registered option numbers.
func (kind OptionKind) IsDefined() bool {
	return kind <= 30 || kind == 34 || kind == 69 || kind == 172 || kind == 174
}

func (kind OptionKind) String() string {
	switch kind {
	case OptEnd:
		return "end of option list"
	case OptNop:
		return "no-operation"
	case OptMaxSegmentSize:
		return "maximum segment size"
	case OptWindowScale:
		return "window scale"
	case OptSACKPermitted:
		return "SACK permitted"
	case OptSACK:
		return "SACK"
	case OptEcho:
		return "echo(obsolete)"
	case optEchoReply:
		return "echo reply(obsolete)"
	case OptTimestamps:
		return "timestamps"
	case optPOCP:
		return "partial order connection permitted(obsolete)"
	case optPOSP:
		return "partial order service profile(obsolete)"
	case optCC:
		return "CC(obsolete)"
	case optCCnew:
		return "CC.new(obsolete)"
	case optCCecho:
		return "CC.echo(obsolete)"
	case optACR:
		return "alternate checksum request(obsolete)"
	case optACD:
		return "alternate checksum data(obsolete)"
	case optSkeeter:
		return "skeeter"
	case optBubba:
		return "bubba"
	case OptTrailerChecksum:
		return "trailer checksum"
	case optMD5Signature:
		return "MD5 signature(obsolete)"
	case OptSCPSCapabilities:
		return "SCPS capabilities"
	case OptSNA:
		return "selective negative acks"
	case OptRecordBoundaries:
		return "record boundaries"
	case OptCorruptionExperienced:
		return "corruption experienced"
	case OptSNAP:
		return "SNAP"
	case OptUnassigned:
		return "unassigned"
	case OptCompressionFilter:
		return "compression filter"
	case OptQuickStartResponse:
		return "quick-start response"
	case OptUserTimeout:
		return "user timeout or unauthorized use"
	case OptAuthentication:
		return "Authentication TCP-AO"
	case OptMultipath:
		return "multipath TCP"
	case OptFastOpenCookie:
		return "fast open cookie"
	case OptEncryptionNegotiation:
		return "encryption negotiation"
	case OptAccurateECN0:
		return "accurate ECN order 0"
	case OptAccurateECN1:
		return "accurate ECN order 1"
	default:
		return fmt.Sprintf("OptionKind(%d)", uint8(kind))
	}
}

// Option is one entry of the option area. End and Nop carry no Data.
type Option struct {
	Kind OptionKind
	Data []byte
}

// Options is the decoded option area of a segment.
type Options []Option

var errShortOptionLength = errors.New("TCP option length byte shorter than option header")

// decodeOption reads one TCP option from c. End (0x00) and Nop (0x01)
// carry no length byte; every other kind is followed by a length byte
// (counting the 2-byte kind+length prefix) and length-2 data bytes.
func decodeOption(c *parse.Cursor) (Option, error) {
	kindByte, err := c.U8()
	if err != nil {
		return Option{}, err
	}
	kind := OptionKind(kindByte)
	if kind == OptEnd || kind == OptNop {
		return Option{Kind: kind}, nil
	}
	length, err := c.U8()
	if err != nil {
		return Option{}, err
	}
	if length < 2 {
		return Option{}, errShortOptionLength
	}
	data, err := c.Take(int(length) - 2)
	if err != nil {
		return Option{}, err
	}
	return Option{Kind: kind, Data: data}, nil
}

// Packet is a fully-decoded TCP segment.
type Packet struct {
	SourcePort      uint16
	DestinationPort uint16
	Seq             uint32
	Ack             uint32
	DataOffset      width.U4
	Reserved        width.U3
	Flags           Flags
	Window          uint16
	Checksum        uint16
	UrgentPtr       uint16
	Options         Options
	Payload         common.Blob
}

// Decode reads a TCP segment from c. Everything c has left after the
// header and option area becomes Payload — TCP carries no length field of
// its own; the caller (an IPv4/IPv6 decoder) is responsible for handing
// this function exactly the bytes of one segment.
func Decode(c *parse.Cursor) (Packet, error) {
	return parse.Context(c, "TCP segment", func(c *parse.Cursor) (Packet, error) {
		var p Packet
		var err error
		if p.SourcePort, err = c.BEU16(); err != nil {
			return p, err
		}
		if p.DestinationPort, err = c.BEU16(); err != nil {
			return p, err
		}
		if p.Seq, err = c.BEU32(); err != nil {
			return p, err
		}
		if p.Ack, err = c.BEU32(); err != nil {
			return p, err
		}
		offsetFlags, err := c.BEU16()
		if err != nil {
			return p, err
		}
		p.DataOffset = width.NewU4(uint8(offsetFlags >> 12))
		p.Reserved = width.NewU3(uint8(offsetFlags >> 9))
		p.Flags = Flags(offsetFlags) & flagMask
		if p.Window, err = c.BEU16(); err != nil {
			return p, err
		}
		if p.Checksum, err = c.BEU16(); err != nil {
			return p, err
		}
		if p.UrgentPtr, err = c.BEU16(); err != nil {
			return p, err
		}
		offset := int(p.DataOffset.Uint8())
		if offset < 5 {
			return p, errShortDataOffset
		}
		optionBytes := (offset - 5) * 4
		if optionBytes > 0 {
			optWindow, err := c.Take(optionBytes)
			if err != nil {
				return p, err
			}
			optCursor := parse.NewCursor(optWindow)
			p.Options = parse.Many0(optCursor, decodeOption)
		}
		payload := c.Remaining()
		if _, err := c.Take(len(payload)); err != nil {
			return p, err
		}
		p.Payload = common.NewBlob(payload)
		return p, nil
	})
}

var errShortDataOffset = errors.New("TCP data offset below minimum header size of 5 words")
