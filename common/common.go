// Package common holds the address, blob, and wire-enum types shared by
// more than one layer package. EtherType, IPProto, and ARPOp live here
// rather than in ethernet/ and arp/ respectively because ethernet.Frame
// embeds the decoded arp.Packet directly; leaving the enums in ethernet/
// would make arp/ import ethernet/ for EtherType while ethernet/ imports
// arp/ for arp.Packet, an import cycle. Hoisting the enums breaks it.
package common

import (
	"fmt"
	"net/netip"
	"strings"
)

// MacAddr is a 6-byte Ethernet/802.11 hardware address.
type MacAddr [6]byte

// String renders the address as colon-separated uppercase hex, e.g.
// "AA:BB:CC:DD:EE:FF".
func (m MacAddr) String() string {
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X", m[0], m[1], m[2], m[3], m[4], m[5])
}

// IPv4Addr is a 4-byte IPv4 address.
type IPv4Addr [4]byte

// String renders the address in dotted-decimal notation.
func (a IPv4Addr) String() string {
	return netip.AddrFrom4(a).String()
}

// IPv6Addr is a 16-byte IPv6 address.
type IPv6Addr [16]byte

// String renders the address per RFC 5952, the canonical compressed form
// net/netip already implements, rather than a naive 8-group expansion.
func (a IPv6Addr) String() string {
	return netip.AddrFrom16(a).String()
}

// Blob is a bounded, owning view over decoded bytes: a full copy of the
// underlying slice plus a length-limited hex preview for diagnostics. The
// caller never needs the preview logic; it exists purely for %v/String
// output on large payloads (raw TCP/UDP/ICMP bodies, encrypted 802.11
// frame bodies) so a dump doesn't dump megabytes of hex.
type Blob struct {
	bytes []byte
}

// NewBlob copies b into a Blob. The input is never retained.
func NewBlob(b []byte) Blob {
	cp := make([]byte, len(b))
	copy(cp, b)
	return Blob{bytes: cp}
}

// Bytes returns the full copied content.
func (b Blob) Bytes() []byte { return b.bytes }

// Len returns the number of bytes held.
func (b Blob) Len() int { return len(b.bytes) }

// String shows up to 20 bytes in hex, followed by "+ N bytes" if the blob
// is longer.
func (b Blob) String() string {
	const preview = 20
	if len(b.bytes) <= preview {
		return hexBytes(b.bytes)
	}
	return fmt.Sprintf("%s + %d bytes", hexBytes(b.bytes[:preview]), len(b.bytes)-preview)
}

func hexBytes(b []byte) string {
	var sb strings.Builder
	for i, c := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02x", c)
	}
	return sb.String()
}

// EtherType identifies the payload protocol carried by an Ethernet II
// frame. Parsing an EtherType never fails: an unrecognised 16-bit value is
// reported via LookupEtherType's ok=false rather than an error. An unknown
// ethertype is valid wire data, just uninterpretable.
type EtherType uint16

// IsSize reports whether et is actually an IEEE 802.3 length field rather
// than an EtherType (values 1500 and below are frame-length, not a
// protocol tag).
func (et EtherType) IsSize() bool { return et <= 1500 }

const (
	EtherTypeIPv4                EtherType = 0x0800 // IPv4
	EtherTypeARP                 EtherType = 0x0806 // ARP
	EtherTypeWakeOnLAN           EtherType = 0x0842 // wake on LAN
	EtherTypeTRILL               EtherType = 0x22F3 // TRILL
	EtherTypeDECnetPhase4        EtherType = 0x6003 // DECnetPhase4
	EtherTypeRARP                EtherType = 0x8035 // RARP
	EtherTypeAppleTalk           EtherType = 0x809B // AppleTalk
	EtherTypeAARP                EtherType = 0x80F3 // AARP
	EtherTypeIPX1                EtherType = 0x8137 // IPx1
	EtherTypeIPX2                EtherType = 0x8138 // IPx2
	EtherTypeQNXQnet             EtherType = 0x8204 // QNXQnet
	EtherTypeIPv6                EtherType = 0x86DD // IPv6
	EtherTypeEthernetFlowControl EtherType = 0x8808 // EthernetFlowCtl
	EtherTypeIEEE802_3           EtherType = 0x8809 // IEEE802.3
	EtherTypeCobraNet            EtherType = 0x8819 // CobraNet
	EtherTypeMPLSUnicast         EtherType = 0x8847 // MPLS Unicast
	EtherTypeMPLSMulticast       EtherType = 0x8848 // MPLS Multicast
	EtherTypePPPoEDiscovery      EtherType = 0x8863 // PPPoE discovery
	EtherTypePPPoESession        EtherType = 0x8864 // PPPoE session
	EtherTypeJumboFrames         EtherType = 0x8870 // jumbo frames
	EtherTypeHomePlug1_0MME      EtherType = 0x887B // home plug 1 0mme
	EtherTypeIEEE802_1X          EtherType = 0x888E // IEEE 802.1x
	EtherTypePROFINET            EtherType = 0x8892 // profinet
	EtherTypeHyperSCSI           EtherType = 0x889A // hyper SCSI
	EtherTypeAoE                 EtherType = 0x88A2 // AoE
	EtherTypeEtherCAT            EtherType = 0x88A4 // EtherCAT
	EtherTypeEthernetPowerlink   EtherType = 0x88AB // Ethernet powerlink
	EtherTypeLLDP                EtherType = 0x88CC // LLDP
	EtherTypeSERCOS3             EtherType = 0x88CD // SERCOS3
	EtherTypeHomePlugAVMME       EtherType = 0x88E1 // home plug AVMME
	EtherTypeMRP                 EtherType = 0x88E3 // MRP
	EtherTypeIEEE802_1AE         EtherType = 0x88E5 // IEEE 802.1ae
	EtherTypeIEEE1588            EtherType = 0x88F7 // IEEE 1588
	EtherTypeIEEE802_1ag         EtherType = 0x8902 // IEEE 802.1ag
	EtherTypeFCoE                EtherType = 0x8906 // FCoE
	EtherTypeFCoEInit            EtherType = 0x8914 // FCoE init
	EtherTypeRoCE                EtherType = 0x8915 // RoCE
	EtherTypeCTP                 EtherType = 0x9000 // CTP
	EtherTypeVeritasLLT          EtherType = 0xCAFE // Veritas LLT
	EtherTypeVLAN                EtherType = 0x8100 // VLAN
	EtherTypeServiceVLAN         EtherType = 0x88a8 // service VLAN
)

// String renders the EtherType using its conventional short label.
func (et EtherType) String() string {
	switch et {
	case EtherTypeIPv4:
		return "IPv4"
	case EtherTypeARP:
		return "ARP"
	case EtherTypeWakeOnLAN:
		return "wake on LAN"
	case EtherTypeTRILL:
		return "TRILL"
	case EtherTypeDECnetPhase4:
		return "DECnetPhase4"
	case EtherTypeRARP:
		return "RARP"
	case EtherTypeAppleTalk:
		return "AppleTalk"
	case EtherTypeAARP:
		return "AARP"
	case EtherTypeIPX1:
		return "IPx1"
	case EtherTypeIPX2:
		return "IPx2"
	case EtherTypeQNXQnet:
		return "QNXQnet"
	case EtherTypeIPv6:
		return "IPv6"
	case EtherTypeEthernetFlowControl:
		return "EthernetFlowCtl"
	case EtherTypeIEEE802_3:
		return "IEEE802.3"
	case EtherTypeCobraNet:
		return "CobraNet"
	case EtherTypeMPLSUnicast:
		return "MPLS Unicast"
	case EtherTypeMPLSMulticast:
		return "MPLS Multicast"
	case EtherTypePPPoEDiscovery:
		return "PPPoE discovery"
	case EtherTypePPPoESession:
		return "PPPoE session"
	case EtherTypeJumboFrames:
		return "jumbo frames"
	case EtherTypeHomePlug1_0MME:
		return "home plug 1 0mme"
	case EtherTypeIEEE802_1X:
		return "IEEE 802.1x"
	case EtherTypePROFINET:
		return "profinet"
	case EtherTypeHyperSCSI:
		return "hyper SCSI"
	case EtherTypeAoE:
		return "AoE"
	case EtherTypeEtherCAT:
		return "EtherCAT"
	case EtherTypeEthernetPowerlink:
		return "Ethernet powerlink"
	case EtherTypeLLDP:
		return "LLDP"
	case EtherTypeSERCOS3:
		return "SERCOS3"
	case EtherTypeHomePlugAVMME:
		return "home plug AVMME"
	case EtherTypeMRP:
		return "MRP"
	case EtherTypeIEEE802_1AE:
		return "IEEE 802.1ae"
	case EtherTypeIEEE1588:
		return "IEEE 1588"
	case EtherTypeIEEE802_1ag:
		return "IEEE 802.1ag"
	case EtherTypeFCoE:
		return "FCoE"
	case EtherTypeFCoEInit:
		return "FCoE init"
	case EtherTypeRoCE:
		return "RoCE"
	case EtherTypeCTP:
		return "CTP"
	case EtherTypeVeritasLLT:
		return "Veritas LLT"
	case EtherTypeVLAN:
		return "VLAN"
	case EtherTypeServiceVLAN:
		return "service VLAN"
	default:
		return fmt.Sprintf("EtherType(0x%04x)", uint16(et))
	}
}

// LookupEtherType reports whether v is one of the recognised EtherType
// values, returning the typed value and true if so.
func LookupEtherType(v uint16) (EtherType, bool) {
	switch EtherType(v) {
	case EtherTypeIPv4, EtherTypeARP, EtherTypeWakeOnLAN, EtherTypeTRILL,
		EtherTypeDECnetPhase4, EtherTypeRARP, EtherTypeAppleTalk, EtherTypeAARP,
		EtherTypeIPX1, EtherTypeIPX2, EtherTypeQNXQnet, EtherTypeIPv6,
		EtherTypeEthernetFlowControl, EtherTypeIEEE802_3, EtherTypeCobraNet,
		EtherTypeMPLSUnicast, EtherTypeMPLSMulticast, EtherTypePPPoEDiscovery,
		EtherTypePPPoESession, EtherTypeJumboFrames, EtherTypeHomePlug1_0MME,
		EtherTypeIEEE802_1X, EtherTypePROFINET, EtherTypeHyperSCSI,
		EtherTypeAoE, EtherTypeEtherCAT, EtherTypeEthernetPowerlink,
		EtherTypeLLDP, EtherTypeSERCOS3, EtherTypeHomePlugAVMME, EtherTypeMRP,
		EtherTypeIEEE802_1AE, EtherTypeIEEE1588, EtherTypeIEEE802_1ag,
		EtherTypeFCoE, EtherTypeFCoEInit, EtherTypeRoCE, EtherTypeCTP,
		EtherTypeVeritasLLT, EtherTypeVLAN, EtherTypeServiceVLAN:
		return EtherType(v), true
	default:
		return 0, false
	}
}

// IPProto is an IP protocol number (the IPv4 "protocol" field / IPv6
// "next header" field).
type IPProto uint8

const (
	IPProtoHopByHop        IPProto = 0   // IPv6 Hop-by-Hop Option [RFC8200]
	IPProtoICMP            IPProto = 1   // Internet Control Message [RFC792]
	IPProtoIGMP            IPProto = 2   // Internet Group Management [RFC1112]
	IPProtoGGP             IPProto = 3   // Gateway-to-Gateway [RFC823]
	IPProtoIPv4            IPProto = 4   // IPv4 encapsulation [RFC2003]
	IPProtoST              IPProto = 5   // Stream [RFC1190, RFC1819]
	IPProtoTCP             IPProto = 6   // Transmission Control [RFC793]
	IPProtoCBT             IPProto = 7   // CBT [Ballardie]
	IPProtoEGP             IPProto = 8   // Exterior Gateway Protocol [RFC888]
	IPProtoIGP             IPProto = 9   // any private interior gateway (used by Cisco for their IGRP)
	IPProtoBBNRCCMON       IPProto = 10  // BBN RCC Monitoring
	IPProtoNVP             IPProto = 11  // Network Voice Protocol [RFC741]
	IPProtoPUP             IPProto = 12  // PUP
	IPProtoARGUS           IPProto = 13  // ARGUS
	IPProtoEMCON           IPProto = 14  // EMCON
	IPProtoXNET            IPProto = 15  // Cross Net Debugger
	IPProtoCHAOS           IPProto = 16  // Chaos
	IPProtoUDP             IPProto = 17  // User Datagram [RFC768]
	IPProtoMUX             IPProto = 18  // Multiplexing
	IPProtoDCNMEAS         IPProto = 19  // DCN Measurement Subsystems
	IPProtoHMP             IPProto = 20  // Host Monitoring [RFC869]
	IPProtoPRM             IPProto = 21  // Packet Radio Measurement
	IPProtoXNSIDP          IPProto = 22  // XEROX NS IDP
	IPProtoTRUNK1          IPProto = 23  // Trunk-1
	IPProtoTRUNK2          IPProto = 24  // Trunk-2
	IPProtoLEAF1           IPProto = 25  // Leaf-1
	IPProtoLEAF2           IPProto = 26  // Leaf-2
	IPProtoRDP             IPProto = 27  // Reliable Data Protocol [RFC908]
	IPProtoIRTP            IPProto = 28  // Internet Reliable Transaction [RFC938]
	IPProtoISO_TP4         IPProto = 29  // ISO Transport Protocol Class 4 [RFC905]
	IPProtoNETBLT          IPProto = 30  // Bulk Data Transfer Protocol [RFC998]
	IPProtoMFE_NSP         IPProto = 31  // MFE Network Services Protocol
	IPProtoMERIT_INP       IPProto = 32  // MERIT Internodal Protocol
	IPProtoDCCP            IPProto = 33  // Datagram Congestion Control Protocol [RFC4340]
	IPProto3PC             IPProto = 34  // Third Party Connect Protocol
	IPProtoIDPR            IPProto = 35  // Inter-Domain Policy Routing Protocol
	IPProtoXTP             IPProto = 36  // XTP
	IPProtoDDP             IPProto = 37  // Datagram Delivery Protocol
	IPProtoIDPRCMTP        IPProto = 38  // IDPR Control Message Transport Proto
	IPProtoTPPLUSPLUS      IPProto = 39  // TP++ Transport Protocol
	IPProtoIL              IPProto = 40  // IL Transport Protocol
	IPProtoIPv6            IPProto = 41  // IPv6 encapsulation [RFC2473]
	IPProtoSDRP            IPProto = 42  // Source Demand Routing Protocol
	IPProtoIPv6Route       IPProto = 43  // Routing Header for IPv6 [RFC8200]
	IPProtoIPv6Frag        IPProto = 44  // Fragment Header for IPv6 [RFC8200]
	IPProtoIDRP            IPProto = 45  // Inter-Domain Routing Protocol
	IPProtoRSVP            IPProto = 46  // Reservation Protocol [RFC2205]
	IPProtoGRE             IPProto = 47  // Generic Routing Encapsulation [RFC2784]
	IPProtoDSR             IPProto = 48  // Dynamic Source Routing Protocol
	IPProtoBNA             IPProto = 49  // BNA
	IPProtoESP             IPProto = 50  // Encap Security Payload [RFC4303]
	IPProtoAH              IPProto = 51  // Authentication Header [RFC4302]
	IPProtoINLSP           IPProto = 52  // Integrated Net Layer Security TUBA
	IPProtoSWIPE           IPProto = 53  // IP with Encryption
	IPProtoNARP            IPProto = 54  // NBMA Address Resolution Protocol
	IPProtoMOBILE          IPProto = 55  // IP Mobility
	IPProtoTLSP            IPProto = 56  // Transport Layer Security Protocol using Kryptonet key management
	IPProtoSKIP            IPProto = 57  // SKIP
	IPProtoIPv6ICMP        IPProto = 58  // ICMP for IPv6 [RFC8200]
	IPProtoIPv6NoNxt       IPProto = 59  // No Next Header for IPv6 [RFC8200]
	IPProtoIPv6Opts        IPProto = 60  // Destination Options for IPv6 [RFC8200]
	IPProtoCFTP            IPProto = 62  // CFTP
	IPProtoSATEXPAK        IPProto = 64  // SATNET and Backroom EXPAK
	IPProtoKRYPTOLAN       IPProto = 65  // Kryptolan
	IPProtoRVD             IPProto = 66  // MIT Remote Virtual Disk Protocol
	IPProtoIPPC            IPProto = 67  // Internet Pluribus Packet Core
	IPProtoSATMON          IPProto = 69  // SATNET Monitoring
	IPProtoVISA            IPProto = 70  // VISA Protocol
	IPProtoIPCV            IPProto = 71  // Internet Packet Core Utility
	IPProtoCPNX            IPProto = 72  // Computer Protocol Network Executive
	IPProtoCPHB            IPProto = 73  // Computer Protocol Heart Beat
	IPProtoWSN             IPProto = 74  // Wang Span Network
	IPProtoPVP             IPProto = 75  // Packet Video Protocol
	IPProtoBRSATMON        IPProto = 76  // Backroom SATNET Monitoring
	IPProtoSUNND           IPProto = 77  // SUN ND PROTOCOL-Temporary
	IPProtoWBMON           IPProto = 78  // WIDEBAND Monitoring
	IPProtoWBEXPAK         IPProto = 79  // WIDEBAND EXPAK
	IPProtoISOIP           IPProto = 80  // ISO Internet Protocol
	IPProtoVMTP            IPProto = 81  // VMTP
	IPProtoSECUREVMTP      IPProto = 82  // SECURE-VMTP
	IPProtoVINES           IPProto = 83  // VINES
	IPProtoTTP             IPProto = 84  // TTP
	IPProtoNSFNETIGP       IPProto = 85  // NSFNET-IGP
	IPProtoDGP             IPProto = 86  // Dissimilar Gateway Protocol
	IPProtoTCF             IPProto = 87  // TCF
	IPProtoEIGRP           IPProto = 88  // EIGRP
	IPProtoOSPFIGP         IPProto = 89  // OSPFIGP
	IPProtoSpriteRPC       IPProto = 90  // Sprite RPC Protocol
	IPProtoLARP            IPProto = 91  // Locus Address Resolution Protocol
	IPProtoMTP             IPProto = 92  // Multicast Transport Protocol
	IPProtoAX25            IPProto = 93  // AX.25 Frames
	IPProtoIPIP            IPProto = 94  // IP-within-IP Encapsulation Protocol
	IPProtoMICP            IPProto = 95  // Mobile Internetworking Control Pro.
	IPProtoSCCSP           IPProto = 96  // Semaphore Communications Sec. Pro.
	IPProtoETHERIP         IPProto = 97  // Ethernet-within-IP Encapsulation
	IPProtoENCAP           IPProto = 98  // Encapsulation Header
	IPProtoGMTP            IPProto = 100 // GMTP
	IPProtoIFMP            IPProto = 101 // Ipsilon Flow Management Protocol
	IPProtoPNNI            IPProto = 102 // PNNI over IP
	IPProtoPIM             IPProto = 103 // Protocol Independent Multicast
	IPProtoARIS            IPProto = 104 // ARIS
	IPProtoSCPS            IPProto = 105 // SCPS
	IPProtoQNX             IPProto = 106 // QNX
	IPProtoAN              IPProto = 107 // Active Networks
	IPProtoIPComp          IPProto = 108 // IP Payload Compression Protocol
	IPProtoSNP             IPProto = 109 // Sitara Networks Protocol
	IPProtoCompaqPeer      IPProto = 110 // Compaq Peer Protocol
	IPProtoIPXInIP         IPProto = 111 // IPX in IP
	IPProtoVRRP            IPProto = 112 // Virtual Router Redundancy Protocol
	IPProtoPGM             IPProto = 113 // PGM Reliable Transport Protocol
	IPProtoL2TP            IPProto = 115 // Layer Two Tunneling Protocol v3
	IPProtoDDX             IPProto = 116 // D-II Data Exchange (DDX)
	IPProtoIATP            IPProto = 117 // Interactive Agent Transfer Protocol
	IPProtoSTP             IPProto = 118 // Schedule Transfer Protocol
	IPProtoSRP             IPProto = 119 // SpectraLink Radio Protocol
	IPProtoUTI             IPProto = 120 // UTI
	IPProtoSMP             IPProto = 121 // Simple Message Protocol
	IPProtoSM              IPProto = 122 // SM
	IPProtoPTP             IPProto = 123 // Performance Transparency Protocol
	IPProtoISIS            IPProto = 124 // ISIS over IPv4
	IPProtoFIRE            IPProto = 125 // FIRE
	IPProtoCRTP            IPProto = 126 // Combat Radio Transport Protocol
	IPProtoCRUDP           IPProto = 127 // Combat Radio User Datagram
	IPProtoSSCOPMCE        IPProto = 128 // SSCOPMCE
	IPProtoIPLT            IPProto = 129 // IPLT
	IPProtoSPS             IPProto = 130 // Secure Packet Shield
	IPProtoPIPE            IPProto = 131 // Private IP Encapsulation within IP
	IPProtoSCTP            IPProto = 132 // Stream Control Transmission Protocol
	IPProtoFC              IPProto = 133 // Fibre Channel
	IPProtoRSVP_E2E_IGNORE IPProto = 134 // RSVP-E2E-IGNORE
	IPProtoMobilityHeader  IPProto = 135 // Mobility Header
	IPProtoUDPLite         IPProto = 136 // UDPLite
	IPProtoMPLSInIP        IPProto = 137 // MPLS-in-IP
	IPProtoMANET           IPProto = 138 // MANET Protocols
	IPProtoHIP             IPProto = 139 // Host Identity Protocol
	IPProtoShim6           IPProto = 140 // Shim6 Protocol
	IPProtoWESP            IPProto = 141 // Wrapped Encapsulating Security Payload
	IPProtoROHC            IPProto = 142 // Robust Header Compression
	IPProtoEthernet        IPProto = 143 // Ethernet
	IPProtoAGGFRAG         IPProto = 144 // AGGFRAG Encapsulation payload for ESP
	IPProtoNSH             IPProto = 145 // Network Service Header
)

// String renders the protocol number using its registered short name, or
// a numeric fallback for unregistered values.
func (p IPProto) String() string {
	switch p {
	case IPProtoHopByHop:
		return "IPv6 Hop-by-Hop Option [RFC8200]"
	case IPProtoICMP:
		return "Internet Control Message [RFC792]"
	case IPProtoIGMP:
		return "Internet Group Management [RFC1112]"
	case IPProtoGGP:
		return "Gateway-to-Gateway [RFC823]"
	case IPProtoIPv4:
		return "IPv4 encapsulation [RFC2003]"
	case IPProtoST:
		return "Stream [RFC1190, RFC1819]"
	case IPProtoTCP:
		return "Transmission Control [RFC793]"
	case IPProtoCBT:
		return "CBT [Ballardie]"
	case IPProtoEGP:
		return "Exterior Gateway Protocol [RFC888]"
	case IPProtoIGP:
		return "any private interior gateway (used by Cisco for their IGRP)"
	case IPProtoBBNRCCMON:
		return "BBN RCC Monitoring"
	case IPProtoNVP:
		return "Network Voice Protocol [RFC741]"
	case IPProtoPUP:
		return "PUP"
	case IPProtoARGUS:
		return "ARGUS"
	case IPProtoEMCON:
		return "EMCON"
	case IPProtoXNET:
		return "Cross Net Debugger"
	case IPProtoCHAOS:
		return "Chaos"
	case IPProtoUDP:
		return "User Datagram [RFC768]"
	case IPProtoMUX:
		return "Multiplexing"
	case IPProtoDCNMEAS:
		return "DCN Measurement Subsystems"
	case IPProtoHMP:
		return "Host Monitoring [RFC869]"
	case IPProtoPRM:
		return "Packet Radio Measurement"
	case IPProtoXNSIDP:
		return "XEROX NS IDP"
	case IPProtoTRUNK1:
		return "Trunk-1"
	case IPProtoTRUNK2:
		return "Trunk-2"
	case IPProtoLEAF1:
		return "Leaf-1"
	case IPProtoLEAF2:
		return "Leaf-2"
	case IPProtoRDP:
		return "Reliable Data Protocol [RFC908]"
	case IPProtoIRTP:
		return "Internet Reliable Transaction [RFC938]"
	case IPProtoISO_TP4:
		return "ISO Transport Protocol Class 4 [RFC905]"
	case IPProtoNETBLT:
		return "Bulk Data Transfer Protocol [RFC998]"
	case IPProtoMFE_NSP:
		return "MFE Network Services Protocol"
	case IPProtoMERIT_INP:
		return "MERIT Internodal Protocol"
	case IPProtoDCCP:
		return "Datagram Congestion Control Protocol [RFC4340]"
	case IPProto3PC:
		return "Third Party Connect Protocol"
	case IPProtoIDPR:
		return "Inter-Domain Policy Routing Protocol"
	case IPProtoXTP:
		return "XTP"
	case IPProtoDDP:
		return "Datagram Delivery Protocol"
	case IPProtoIDPRCMTP:
		return "IDPR Control Message Transport Proto"
	case IPProtoTPPLUSPLUS:
		return "TP++ Transport Protocol"
	case IPProtoIL:
		return "IL Transport Protocol"
	case IPProtoIPv6:
		return "IPv6 encapsulation [RFC2473]"
	case IPProtoSDRP:
		return "Source Demand Routing Protocol"
	case IPProtoIPv6Route:
		return "Routing Header for IPv6 [RFC8200]"
	case IPProtoIPv6Frag:
		return "Fragment Header for IPv6 [RFC8200]"
	case IPProtoIDRP:
		return "Inter-Domain Routing Protocol"
	case IPProtoRSVP:
		return "Reservation Protocol [RFC2205]"
	case IPProtoGRE:
		return "Generic Routing Encapsulation [RFC2784]"
	case IPProtoDSR:
		return "Dynamic Source Routing Protocol"
	case IPProtoBNA:
		return "BNA"
	case IPProtoESP:
		return "Encap Security Payload [RFC4303]"
	case IPProtoAH:
		return "Authentication Header [RFC4302]"
	case IPProtoINLSP:
		return "Integrated Net Layer Security TUBA"
	case IPProtoSWIPE:
		return "IP with Encryption"
	case IPProtoNARP:
		return "NBMA Address Resolution Protocol"
	case IPProtoMOBILE:
		return "IP Mobility"
	case IPProtoTLSP:
		return "Transport Layer Security Protocol using Kryptonet key management"
	case IPProtoSKIP:
		return "SKIP"
	case IPProtoIPv6ICMP:
		return "ICMP for IPv6 [RFC8200]"
	case IPProtoIPv6NoNxt:
		return "No Next Header for IPv6 [RFC8200]"
	case IPProtoIPv6Opts:
		return "Destination Options for IPv6 [RFC8200]"
	case IPProtoCFTP:
		return "CFTP"
	case IPProtoSATEXPAK:
		return "SATNET and Backroom EXPAK"
	case IPProtoKRYPTOLAN:
		return "Kryptolan"
	case IPProtoRVD:
		return "MIT Remote Virtual Disk Protocol"
	case IPProtoIPPC:
		return "Internet Pluribus Packet Core"
	case IPProtoSATMON:
		return "SATNET Monitoring"
	case IPProtoVISA:
		return "VISA Protocol"
	case IPProtoIPCV:
		return "Internet Packet Core Utility"
	case IPProtoCPNX:
		return "Computer Protocol Network Executive"
	case IPProtoCPHB:
		return "Computer Protocol Heart Beat"
	case IPProtoWSN:
		return "Wang Span Network"
	case IPProtoPVP:
		return "Packet Video Protocol"
	case IPProtoBRSATMON:
		return "Backroom SATNET Monitoring"
	case IPProtoSUNND:
		return "SUN ND PROTOCOL-Temporary"
	case IPProtoWBMON:
		return "WIDEBAND Monitoring"
	case IPProtoWBEXPAK:
		return "WIDEBAND EXPAK"
	case IPProtoISOIP:
		return "ISO Internet Protocol"
	case IPProtoVMTP:
		return "VMTP"
	case IPProtoSECUREVMTP:
		return "SECURE-VMTP"
	case IPProtoVINES:
		return "VINES"
	case IPProtoTTP:
		return "TTP"
	case IPProtoNSFNETIGP:
		return "NSFNET-IGP"
	case IPProtoDGP:
		return "Dissimilar Gateway Protocol"
	case IPProtoTCF:
		return "TCF"
	case IPProtoEIGRP:
		return "EIGRP"
	case IPProtoOSPFIGP:
		return "OSPFIGP"
	case IPProtoSpriteRPC:
		return "Sprite RPC Protocol"
	case IPProtoLARP:
		return "Locus Address Resolution Protocol"
	case IPProtoMTP:
		return "Multicast Transport Protocol"
	case IPProtoAX25:
		return "AX.25 Frames"
	case IPProtoIPIP:
		return "IP-within-IP Encapsulation Protocol"
	case IPProtoMICP:
		return "Mobile Internetworking Control Pro."
	case IPProtoSCCSP:
		return "Semaphore Communications Sec. Pro."
	case IPProtoETHERIP:
		return "Ethernet-within-IP Encapsulation"
	case IPProtoENCAP:
		return "Encapsulation Header"
	case IPProtoGMTP:
		return "GMTP"
	case IPProtoIFMP:
		return "Ipsilon Flow Management Protocol"
	case IPProtoPNNI:
		return "PNNI over IP"
	case IPProtoPIM:
		return "Protocol Independent Multicast"
	case IPProtoARIS:
		return "ARIS"
	case IPProtoSCPS:
		return "SCPS"
	case IPProtoQNX:
		return "QNX"
	case IPProtoAN:
		return "Active Networks"
	case IPProtoIPComp:
		return "IP Payload Compression Protocol"
	case IPProtoSNP:
		return "Sitara Networks Protocol"
	case IPProtoCompaqPeer:
		return "Compaq Peer Protocol"
	case IPProtoIPXInIP:
		return "IPX in IP"
	case IPProtoVRRP:
		return "Virtual Router Redundancy Protocol"
	case IPProtoPGM:
		return "PGM Reliable Transport Protocol"
	case IPProtoL2TP:
		return "Layer Two Tunneling Protocol v3"
	case IPProtoDDX:
		return "D-II Data Exchange (DDX)"
	case IPProtoIATP:
		return "Interactive Agent Transfer Protocol"
	case IPProtoSTP:
		return "Schedule Transfer Protocol"
	case IPProtoSRP:
		return "SpectraLink Radio Protocol"
	case IPProtoUTI:
		return "UTI"
	case IPProtoSMP:
		return "Simple Message Protocol"
	case IPProtoSM:
		return "SM"
	case IPProtoPTP:
		return "Performance Transparency Protocol"
	case IPProtoISIS:
		return "ISIS over IPv4"
	case IPProtoFIRE:
		return "FIRE"
	case IPProtoCRTP:
		return "Combat Radio Transport Protocol"
	case IPProtoCRUDP:
		return "Combat Radio User Datagram"
	case IPProtoSSCOPMCE:
		return "SSCOPMCE"
	case IPProtoIPLT:
		return "IPLT"
	case IPProtoSPS:
		return "Secure Packet Shield"
	case IPProtoPIPE:
		return "Private IP Encapsulation within IP"
	case IPProtoSCTP:
		return "Stream Control Transmission Protocol"
	case IPProtoFC:
		return "Fibre Channel"
	case IPProtoRSVP_E2E_IGNORE:
		return "RSVP-E2E-IGNORE"
	case IPProtoMobilityHeader:
		return "Mobility Header"
	case IPProtoUDPLite:
		return "UDPLite"
	case IPProtoMPLSInIP:
		return "MPLS-in-IP"
	case IPProtoMANET:
		return "MANET Protocols"
	case IPProtoHIP:
		return "Host Identity Protocol"
	case IPProtoShim6:
		return "Shim6 Protocol"
	case IPProtoWESP:
		return "Wrapped Encapsulating Security Payload"
	case IPProtoROHC:
		return "Robust Header Compression"
	case IPProtoEthernet:
		return "Ethernet"
	case IPProtoAGGFRAG:
		return "AGGFRAG Encapsulation payload for ESP"
	case IPProtoNSH:
		return "Network Service Header"
	default:
		return fmt.Sprintf("IPProto(%d)", uint8(p))
	}
}

// ARPOp is the 16-bit ARP packet operation field (request or reply).
type ARPOp uint16

const (
	ARPRequest ARPOp = 1 // request
	ARPReply   ARPOp = 2 // reply
)

// String renders the operation as "request"/"reply", or a numeric
// fallback for any other value (ARP defines only these two for IPv4;
// RARP/InARP extensions are out of scope).
func (op ARPOp) String() string {
	switch op {
	case ARPRequest:
		return "request"
	case ARPReply:
		return "reply"
	default:
		return fmt.Sprintf("ARPOp(%d)", uint16(op))
	}
}
