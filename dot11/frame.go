// Package dot11 decodes IEEE 802.11-2016 MAC frames: Frame Control,
// per-(type,subtype) address selection, sequence control, and frame-body
// dispatch into the management bodies defined in management.go. HT/VHT
// capability information elements beyond the catalogue in ie.go are not
// interpreted.
package dot11

import (
	"github.com/markrepedersen/netparser/common"
	"github.com/markrepedersen/netparser/parse"
	"github.com/markrepedersen/netparser/width"
)

// Dot11Type is the 2-bit frame-type field.
type Dot11Type uint8

const (
	TypeManagement Dot11Type = 0
	TypeControl    Dot11Type = 1
	TypeData       Dot11Type = 2
	TypeExtension  Dot11Type = 3
)

func (t Dot11Type) String() string {
	switch t {
	case TypeManagement:
		return "Management"
	case TypeControl:
		return "Control"
	case TypeData:
		return "Data"
	case TypeExtension:
		return "Extension"
	default:
		return "Dot11Type(invalid)"
	}
}

// Dot11Subtype is the (type, 4-bit subtype) pair decoded into one named
// value. The raw 4-bit subtype alone is ambiguous without its type, so
// every constant here is scoped by table rather than overlapping across
// Management/Control/Data/Extension.
type Dot11Subtype uint8

const (
	// Management subtypes. Subtypes with no typed body shape are still
	// carried as named values so FrameControl.Subtype is always
	// populated, even when the body decodes as Malformed.
	SubtypeAssocReq Dot11Subtype = iota
	SubtypeAssocResp
	SubtypeReassocReq
	SubtypeReassocResp
	SubtypeProbeReq
	SubtypeProbeResp
	SubtypeTimingAdvertisement
	subtypeMgmtReserved7
	SubtypeBeacon
	SubtypeATIM
	SubtypeDisassoc
	SubtypeAuth
	SubtypeDeauth
	SubtypeAction
	SubtypeActionNoAck
	subtypeMgmtReserved15

	// Control subtypes.
	subtypeCtrlReserved0
	subtypeCtrlReserved1
	SubtypeTrigger
	subtypeCtrlReserved3
	SubtypeBeamformingReportPoll
	SubtypeNDPAnnouncement
	SubtypeControlFrameExtension
	SubtypeControlWrapper
	SubtypeBAR
	SubtypeBA
	SubtypePSPoll
	SubtypeRTS
	SubtypeCTS
	SubtypeACK
	SubtypeCFEnd
	SubtypeCFEndCFAck

	// Data subtypes.
	SubtypeDataData
	SubtypeDataCFAck
	SubtypeDataCFPoll
	SubtypeDataCFAckCFPoll
	SubtypeDataNull
	SubtypeDataCFAckNoData
	SubtypeDataCFPollNoData
	SubtypeDataCFAckCFPollNoData
	SubtypeQoSData
	SubtypeQoSDataCFAck
	SubtypeQoSDataCFPoll
	SubtypeQoSDataCFAckCFPoll
	SubtypeQoSNull
	subtypeDataReservedD
	SubtypeQoSCFPollNoData
	SubtypeQoSCFAckCFPollNoData

	// Extension subtypes.
	SubtypeDMGBeacon
	subtypeExtReserved
)

// decodeSubtype maps a 4-bit wire subtype into the named Dot11Subtype
// scoped to t.
func decodeSubtype(t Dot11Type, raw uint8) Dot11Subtype {
	raw &= 0xF
	switch t {
	case TypeManagement:
		mgmt := [...]Dot11Subtype{
			SubtypeAssocReq, SubtypeAssocResp, SubtypeReassocReq, SubtypeReassocResp,
			SubtypeProbeReq, SubtypeProbeResp, SubtypeTimingAdvertisement, subtypeMgmtReserved7,
			SubtypeBeacon, SubtypeATIM, SubtypeDisassoc, SubtypeAuth,
			SubtypeDeauth, SubtypeAction, SubtypeActionNoAck, subtypeMgmtReserved15,
		}
		return mgmt[raw]
	case TypeControl:
		ctrl := [...]Dot11Subtype{
			subtypeCtrlReserved0, subtypeCtrlReserved1, SubtypeTrigger, subtypeCtrlReserved3,
			SubtypeBeamformingReportPoll, SubtypeNDPAnnouncement, SubtypeControlFrameExtension, SubtypeControlWrapper,
			SubtypeBAR, SubtypeBA, SubtypePSPoll, SubtypeRTS,
			SubtypeCTS, SubtypeACK, SubtypeCFEnd, SubtypeCFEndCFAck,
		}
		return ctrl[raw]
	case TypeData:
		data := [...]Dot11Subtype{
			SubtypeDataData, SubtypeDataCFAck, SubtypeDataCFPoll, SubtypeDataCFAckCFPoll,
			SubtypeDataNull, SubtypeDataCFAckNoData, SubtypeDataCFPollNoData, SubtypeDataCFAckCFPollNoData,
			SubtypeQoSData, SubtypeQoSDataCFAck, SubtypeQoSDataCFPoll, SubtypeQoSDataCFAckCFPoll,
			SubtypeQoSNull, subtypeDataReservedD, SubtypeQoSCFPollNoData, SubtypeQoSCFAckCFPollNoData,
		}
		return data[raw]
	default: // TypeExtension
		if raw == 0 {
			return SubtypeDMGBeacon
		}
		return subtypeExtReserved
	}
}

// ControlFlags is the second octet of Frame Control, decomposed MSB-first:
// order, protected, more_data, power_mgmt, retry, more_fragments,
// from_ds, to_ds.
type ControlFlags struct {
	Order         bool
	Protected     bool
	MoreData      bool
	PowerMgmt     bool
	Retry         bool
	MoreFragments bool
	FromDS        bool
	ToDS          bool
}

// FrameControl is the decoded 2-byte Frame Control field.
type FrameControl struct {
	Version width.U2
	Typ     Dot11Type
	Subtype Dot11Subtype
	Flags   ControlFlags
}

func decodeFrameControl(c *parse.Cursor) (FrameControl, error) {
	var fc FrameControl
	err := c.Bits(2, func(bc *parse.BitCursor) error {
		subtype, err := bc.Bits(4)
		if err != nil {
			return err
		}
		typ, err := bc.Bits(2)
		if err != nil {
			return err
		}
		version, err := bc.Bits(2)
		if err != nil {
			return err
		}
		fc.Typ = Dot11Type(typ)
		fc.Subtype = decodeSubtype(fc.Typ, uint8(subtype))
		fc.Version = width.NewU2(uint8(version))

		order, err := bc.Bool()
		if err != nil {
			return err
		}
		protected, err := bc.Bool()
		if err != nil {
			return err
		}
		moreData, err := bc.Bool()
		if err != nil {
			return err
		}
		powerMgmt, err := bc.Bool()
		if err != nil {
			return err
		}
		retry, err := bc.Bool()
		if err != nil {
			return err
		}
		moreFrag, err := bc.Bool()
		if err != nil {
			return err
		}
		fromDS, err := bc.Bool()
		if err != nil {
			return err
		}
		toDS, err := bc.Bool()
		if err != nil {
			return err
		}
		fc.Flags = ControlFlags{
			Order: order, Protected: protected, MoreData: moreData, PowerMgmt: powerMgmt,
			Retry: retry, MoreFragments: moreFrag, FromDS: fromDS, ToDS: toDS,
		}
		return nil
	})
	return fc, err
}

// AddrTag names the role an address slot plays, assigned by the
// to_ds/from_ds/type rules rather than being present on the wire.
type AddrTag uint8

const (
	AddrDestination AddrTag = iota
	AddrReceiver
	AddrSource
	AddrTransmitter
	AddrBSSID
)

func (t AddrTag) String() string {
	switch t {
	case AddrDestination:
		return "Destination"
	case AddrReceiver:
		return "Receiver"
	case AddrSource:
		return "Source"
	case AddrTransmitter:
		return "Transmitter"
	case AddrBSSID:
		return "BSSID"
	default:
		return "AddrTag(invalid)"
	}
}

// Dot11Addr is a tagged MAC address: one of the 4 address slots a frame
// carries, tagged by the role the frame's type and DS bits assign it.
type Dot11Addr struct {
	Tag  AddrTag
	Addr common.MacAddr
}

// SeqControl is the little-endian sequence-control field, split into a
// 4-bit fragment number and 12-bit sequence number.
type SeqControl struct {
	FragmentNumber width.U4
	SequenceNumber width.U12
}

func readMac(c *parse.Cursor) (common.MacAddr, error) {
	var m common.MacAddr
	b, err := c.Take(6)
	if err != nil {
		return m, err
	}
	copy(m[:], b)
	return m, nil
}

func decodeSeqControl(c *parse.Cursor) (SeqControl, error) {
	raw, err := c.LEU16()
	if err != nil {
		return SeqControl{}, err
	}
	return SeqControl{
		FragmentNumber: width.NewU4(uint8(raw)),
		SequenceNumber: width.NewU12(raw >> 4),
	}, nil
}

// Frame is a fully-decoded 802.11 MAC frame.
type Frame struct {
	FC         FrameControl
	Duration   uint16
	Addr1      Dot11Addr
	Addr2      *Dot11Addr
	Addr3      *Dot11Addr
	SeqControl *SeqControl
	Addr4      *Dot11Addr
	Body       FrameBody
	FCS        uint32
}

// Decode reads one 802.11 MAC frame from c: Frame Control, duration,
// addresses selected by type and DS bits, an optional sequence control, a
// body dispatched on (type, subtype) unless Protected is set (in which
// case the body is Encrypted), and a trailing little-endian FCS.
func Decode(c *parse.Cursor) (Frame, error) {
	return parse.Context(c, "802.11 MAC frame", func(c *parse.Cursor) (Frame, error) {
		var f Frame
		var err error
		if f.FC, err = decodeFrameControl(c); err != nil {
			return f, err
		}
		if f.Duration, err = c.LEU16(); err != nil {
			return f, err
		}

		addr1Mac, err := readMac(c)
		if err != nil {
			return f, err
		}

		switch f.FC.Typ {
		case TypeData:
			addr2Mac, err := readMac(c)
			if err != nil {
				return f, err
			}
			addr3Mac, err := readMac(c)
			if err != nil {
				return f, err
			}
			toDS, fromDS := f.FC.Flags.ToDS, f.FC.Flags.FromDS
			switch {
			case !toDS && !fromDS:
				f.Addr1 = Dot11Addr{AddrDestination, addr1Mac}
				f.Addr2 = &Dot11Addr{AddrSource, addr2Mac}
				f.Addr3 = &Dot11Addr{AddrBSSID, addr3Mac}
			case toDS && !fromDS:
				f.Addr1 = Dot11Addr{AddrBSSID, addr1Mac}
				f.Addr2 = &Dot11Addr{AddrSource, addr2Mac}
				f.Addr3 = &Dot11Addr{AddrDestination, addr3Mac}
			case !toDS && fromDS:
				f.Addr1 = Dot11Addr{AddrDestination, addr1Mac}
				f.Addr2 = &Dot11Addr{AddrBSSID, addr2Mac}
				f.Addr3 = &Dot11Addr{AddrSource, addr3Mac}
			default: // toDS && fromDS
				f.Addr1 = Dot11Addr{AddrReceiver, addr1Mac}
				f.Addr2 = &Dot11Addr{AddrTransmitter, addr2Mac}
				f.Addr3 = &Dot11Addr{AddrDestination, addr3Mac}
			}
			seq, err := decodeSeqControl(c)
			if err != nil {
				return f, err
			}
			f.SeqControl = &seq
			if toDS && fromDS {
				addr4Mac, err := readMac(c)
				if err != nil {
					return f, err
				}
				f.Addr4 = &Dot11Addr{AddrSource, addr4Mac}
			}

		case TypeControl:
			switch f.FC.Subtype {
			case SubtypeRTS:
				f.Addr1 = Dot11Addr{AddrReceiver, addr1Mac}
				addr2Mac, err := readMac(c)
				if err != nil {
					return f, err
				}
				f.Addr2 = &Dot11Addr{AddrTransmitter, addr2Mac}
			case SubtypePSPoll:
				f.Addr1 = Dot11Addr{AddrBSSID, addr1Mac}
				addr2Mac, err := readMac(c)
				if err != nil {
					return f, err
				}
				f.Addr2 = &Dot11Addr{AddrTransmitter, addr2Mac}
			default:
				f.Addr1 = Dot11Addr{AddrReceiver, addr1Mac}
			}

		case TypeManagement:
			f.Addr1 = Dot11Addr{AddrDestination, addr1Mac}
			addr2Mac, err := readMac(c)
			if err != nil {
				return f, err
			}
			f.Addr2 = &Dot11Addr{AddrSource, addr2Mac}
			addr3Mac, err := readMac(c)
			if err != nil {
				return f, err
			}
			f.Addr3 = &Dot11Addr{AddrBSSID, addr3Mac}
			seq, err := decodeSeqControl(c)
			if err != nil {
				return f, err
			}
			f.SeqControl = &seq

		default: // TypeExtension
			f.Addr1 = Dot11Addr{AddrReceiver, addr1Mac}
		}

		remaining := c.Remaining()
		bodyLen := len(remaining) - 4
		if bodyLen < 0 {
			bodyLen = 0
		}
		bodyBytes, err := c.Take(bodyLen)
		if err != nil {
			return f, err
		}
		f.Body, err = decodeBody(f.FC, bodyBytes)
		if err != nil {
			return f, err
		}
		if f.FCS, err = c.LEU32(); err != nil {
			return f, err
		}
		return f, nil
	})
}
