package dot11

import (
	"github.com/markrepedersen/netparser/common"
	"github.com/markrepedersen/netparser/parse"
	"github.com/markrepedersen/netparser/width"
)

// IEID identifies an 802.11 Information Element by its wire id byte.
// Only the ids below get a dedicated shape; everything else decodes via
// the Unknown arm. The IE id space is an open enumeration — an
// unrecognised id must never fail the parse.
type IEID uint8

const (
	IEIDSSID              IEID = 0
	IEIDSupportedRates    IEID = 1
	IEIDFHParameterSet    IEID = 2
	IEIDDSParameterSet    IEID = 3
	IEIDTIM               IEID = 5
	IEIDIBSSParameterSet  IEID = 6
	IEIDCountry           IEID = 7
	IEIDRequest           IEID = 10
	IEIDChallengeText     IEID = 16
	IEIDPowerConstraint   IEID = 32
	IEIDTPCReport         IEID = 35
	IEIDSupportedChannels IEID = 36
	IEIDChannelSwitch     IEID = 37
	IEIDQuiet             IEID = 40
	IEIDIBSSDFS           IEID = 41
	IEIDERPInfo           IEID = 42
)

// IEKind tags which shape an InformationElement carries.
type IEKind uint8

const (
	IEKindSSID IEKind = iota
	IEKindSupportedRates
	IEKindFHParameterSet
	IEKindDSParameterSet
	IEKindTIM
	IEKindIBSSParameterSet
	IEKindCountry
	IEKindRequest
	IEKindChallengeText
	IEKindPowerConstraint
	IEKindTPCReport
	IEKindSupportedChannels
	IEKindChannelSwitch
	IEKindQuiet
	IEKindIBSSDFS
	IEKindERPInfo
	IEKindUnknown
)

// SupportedRate is one byte of a SupportedRates/ExtendedSupportedRates IE:
// a 7-bit rate label in 500kbps units plus a 1-bit mandatory flag.
type SupportedRate struct {
	Label     uint8
	Mandatory bool
}

// CountryTriplet is one (first_channel, num_channels, max_power) entry of
// a Country IE.
type CountryTriplet struct {
	FirstChannel uint8
	NumChannels  uint8
	MaxPowerDBm  int8
}

// CountryIE is the decoded Country information element: a 3-byte country
// string followed by repeating triplets filling the remaining len-3
// bytes.
type CountryIE struct {
	Country  string
	Triplets []CountryTriplet
}

// IBSSDFSChannelFlag is one (channel, flag map) entry of an IBSS-DFS IE.
type IBSSDFSChannelFlag struct {
	Channel uint8
	FlagMap width.U5
}

// IBSSDFSIE is the decoded IBSS-DFS information element: a 6-byte DFS
// owner address, a 1-byte recovery interval, then repeating
// (channel, 5-bit flag map) entries until len-7 bytes are consumed.
type IBSSDFSIE struct {
	Owner            common.MacAddr
	RecoveryInterval uint8
	Channels         []IBSSDFSChannelFlag
}

// FHParameterSetIE is the decoded FH Parameter Set IE (standard 802.11
// frequency-hopping PHY parameters).
type FHParameterSetIE struct {
	DwellTime  uint16
	HopSet     uint8
	HopPattern uint8
	HopIndex   uint8
}

// TIMIE is the decoded Traffic Indication Map IE.
type TIMIE struct {
	DTIMCount            uint8
	DTIMPeriod           uint8
	BitmapControl        uint8
	PartialVirtualBitmap common.Blob
}

// SupportedChannelEntry is one (first_channel, num_channels) pair of a
// SupportedChannels IE.
type SupportedChannelEntry struct {
	FirstChannel uint8
	NumChannels  uint8
}

// ChannelSwitchIE is the decoded Channel Switch Announcement IE.
type ChannelSwitchIE struct {
	Mode        uint8
	NewChannel  uint8
	SwitchCount uint8
}

// QuietIE is the decoded Quiet IE.
type QuietIE struct {
	Count    uint8
	Period   uint8
	Duration uint16
	Offset   uint16
}

// TPCReportIE is the decoded Transmit Power Control Report IE.
type TPCReportIE struct {
	TransmitPower int8
	LinkMargin    int8
}

// UnknownIE is the generic fallback for any id without a dedicated shape,
// or whose bytes this decoder chooses not to interpret further.
type UnknownIE struct {
	ID  uint8
	Len uint8
}

// InformationElement is an 802.11 IE — a 1-byte id, a 1-byte length, and
// len value bytes — tagged by Kind with exactly one shape field populated
// plus the raw id and length.
type InformationElement struct {
	Kind IEKind
	ID   uint8
	Len  uint8

	SSID              string
	SupportedRates    []SupportedRate
	FHParameterSet    *FHParameterSetIE
	DSParameterSet    *uint8
	TIM               *TIMIE
	IBSSParameterSet  *uint16
	Country           *CountryIE
	Request           common.Blob
	ChallengeText     common.Blob
	PowerConstraint   *uint8
	TPCReport         *TPCReportIE
	SupportedChannels []SupportedChannelEntry
	ChannelSwitch     *ChannelSwitchIE
	Quiet             *QuietIE
	IBSSDFS           *IBSSDFSIE
	ERPInfo           *uint8
	Unknown           *UnknownIE
}

// DecodeIE reads one {id, len, value} triplet and dispatches its value by
// id. Unknown ids store {id, len} and skip len bytes rather than failing.
func DecodeIE(c *parse.Cursor) (InformationElement, error) {
	return parse.Context(c, "802.11 Information Element", func(c *parse.Cursor) (InformationElement, error) {
		var ie InformationElement
		id, err := c.U8()
		if err != nil {
			return ie, err
		}
		length, err := c.U8()
		if err != nil {
			return ie, err
		}
		ie.ID = id
		ie.Len = length
		value, err := c.Take(int(length))
		if err != nil {
			return ie, err
		}
		vc := parse.NewCursor(value)
		switch IEID(id) {
		case IEIDSSID:
			ie.Kind = IEKindSSID
			ie.SSID = string(value)
		case IEIDSupportedRates:
			ie.Kind = IEKindSupportedRates
			ie.SupportedRates = decodeSupportedRates(value)
		case IEIDFHParameterSet:
			fh, ferr := decodeFHParameterSet(vc)
			if ferr != nil {
				return ie, ferr
			}
			ie.Kind = IEKindFHParameterSet
			ie.FHParameterSet = &fh
		case IEIDDSParameterSet:
			if length >= 1 {
				ch := value[0]
				ie.Kind = IEKindDSParameterSet
				ie.DSParameterSet = &ch
			} else {
				ie.Kind = IEKindUnknown
				ie.Unknown = &UnknownIE{ID: id, Len: length}
			}
		case IEIDTIM:
			tim, terr := decodeTIM(vc)
			if terr != nil {
				return ie, terr
			}
			ie.Kind = IEKindTIM
			ie.TIM = &tim
		case IEIDIBSSParameterSet:
			atim, ierr := vc.LEU16()
			if ierr != nil {
				return ie, ierr
			}
			ie.Kind = IEKindIBSSParameterSet
			ie.IBSSParameterSet = &atim
		case IEIDCountry:
			country, cerr := decodeCountry(value)
			if cerr != nil {
				return ie, cerr
			}
			ie.Kind = IEKindCountry
			ie.Country = &country
		case IEIDRequest:
			ie.Kind = IEKindRequest
			ie.Request = common.NewBlob(value)
		case IEIDChallengeText:
			ie.Kind = IEKindChallengeText
			ie.ChallengeText = common.NewBlob(value)
		case IEIDPowerConstraint:
			if length >= 1 {
				p := value[0]
				ie.Kind = IEKindPowerConstraint
				ie.PowerConstraint = &p
			} else {
				ie.Kind = IEKindUnknown
				ie.Unknown = &UnknownIE{ID: id, Len: length}
			}
		case IEIDTPCReport:
			tpc, terr := decodeTPCReport(vc)
			if terr != nil {
				return ie, terr
			}
			ie.Kind = IEKindTPCReport
			ie.TPCReport = &tpc
		case IEIDSupportedChannels:
			ie.Kind = IEKindSupportedChannels
			ie.SupportedChannels = decodeSupportedChannels(value)
		case IEIDChannelSwitch:
			cs, cerr := decodeChannelSwitch(vc)
			if cerr != nil {
				return ie, cerr
			}
			ie.Kind = IEKindChannelSwitch
			ie.ChannelSwitch = &cs
		case IEIDQuiet:
			q, qerr := decodeQuiet(vc)
			if qerr != nil {
				return ie, qerr
			}
			ie.Kind = IEKindQuiet
			ie.Quiet = &q
		case IEIDIBSSDFS:
			dfs, derr := decodeIBSSDFS(value)
			if derr != nil {
				return ie, derr
			}
			ie.Kind = IEKindIBSSDFS
			ie.IBSSDFS = &dfs
		case IEIDERPInfo:
			if length >= 1 {
				flags := value[0]
				ie.Kind = IEKindERPInfo
				ie.ERPInfo = &flags
			} else {
				ie.Kind = IEKindUnknown
				ie.Unknown = &UnknownIE{ID: id, Len: length}
			}
		default:
			ie.Kind = IEKindUnknown
			ie.Unknown = &UnknownIE{ID: id, Len: length}
		}
		return ie, nil
	})
}

func decodeSupportedRates(value []byte) []SupportedRate {
	rates := make([]SupportedRate, 0, len(value))
	for _, b := range value {
		rates = append(rates, SupportedRate{
			Label:     b &^ 0x80,
			Mandatory: b&0x80 != 0,
		})
	}
	return rates
}

func decodeFHParameterSet(c *parse.Cursor) (FHParameterSetIE, error) {
	var fh FHParameterSetIE
	var err error
	if fh.DwellTime, err = c.LEU16(); err != nil {
		return fh, err
	}
	if fh.HopSet, err = c.U8(); err != nil {
		return fh, err
	}
	if fh.HopPattern, err = c.U8(); err != nil {
		return fh, err
	}
	if fh.HopIndex, err = c.U8(); err != nil {
		return fh, err
	}
	return fh, nil
}

func decodeTIM(c *parse.Cursor) (TIMIE, error) {
	var t TIMIE
	var err error
	if t.DTIMCount, err = c.U8(); err != nil {
		return t, err
	}
	if t.DTIMPeriod, err = c.U8(); err != nil {
		return t, err
	}
	if t.BitmapControl, err = c.U8(); err != nil {
		return t, err
	}
	rest := c.Remaining()
	t.PartialVirtualBitmap = common.NewBlob(rest)
	return t, nil
}

// decodeCountry splits a Country IE's value into its 3-byte country
// string and repeating (first_channel, num_channels, max_power) triplets
// filling the remaining len-3 bytes.
func decodeCountry(value []byte) (CountryIE, error) {
	var out CountryIE
	if len(value) < 3 {
		out.Country = string(value)
		return out, nil
	}
	out.Country = string(value[:3])
	rest := value[3:]
	for len(rest) >= 3 {
		out.Triplets = append(out.Triplets, CountryTriplet{
			FirstChannel: rest[0],
			NumChannels:  rest[1],
			MaxPowerDBm:  int8(rest[2]),
		})
		rest = rest[3:]
	}
	return out, nil
}

func decodeTPCReport(c *parse.Cursor) (TPCReportIE, error) {
	var t TPCReportIE
	tx, err := c.U8()
	if err != nil {
		return t, err
	}
	margin, err := c.U8()
	if err != nil {
		return t, err
	}
	t.TransmitPower = int8(tx)
	t.LinkMargin = int8(margin)
	return t, nil
}

func decodeSupportedChannels(value []byte) []SupportedChannelEntry {
	entries := make([]SupportedChannelEntry, 0, len(value)/2)
	for len(value) >= 2 {
		entries = append(entries, SupportedChannelEntry{FirstChannel: value[0], NumChannels: value[1]})
		value = value[2:]
	}
	return entries
}

func decodeChannelSwitch(c *parse.Cursor) (ChannelSwitchIE, error) {
	var cs ChannelSwitchIE
	var err error
	if cs.Mode, err = c.U8(); err != nil {
		return cs, err
	}
	if cs.NewChannel, err = c.U8(); err != nil {
		return cs, err
	}
	if cs.SwitchCount, err = c.U8(); err != nil {
		return cs, err
	}
	return cs, nil
}

func decodeQuiet(c *parse.Cursor) (QuietIE, error) {
	var q QuietIE
	var err error
	if q.Count, err = c.U8(); err != nil {
		return q, err
	}
	if q.Period, err = c.U8(); err != nil {
		return q, err
	}
	if q.Duration, err = c.LEU16(); err != nil {
		return q, err
	}
	if q.Offset, err = c.LEU16(); err != nil {
		return q, err
	}
	return q, nil
}

// decodeIBSSDFS splits an IBSS-DFS IE's value into its 6-byte DFS owner,
// 1-byte recovery interval, then repeating (channel, 5-bit flag map)
// entries until len-7 bytes are consumed.
func decodeIBSSDFS(value []byte) (IBSSDFSIE, error) {
	var dfs IBSSDFSIE
	c := parse.NewCursor(value)
	owner, err := readMac(c)
	if err != nil {
		return dfs, err
	}
	dfs.Owner = owner
	interval, err := c.U8()
	if err != nil {
		return dfs, err
	}
	dfs.RecoveryInterval = interval
	rest := c.Remaining()
	for len(rest) >= 2 {
		dfs.Channels = append(dfs.Channels, IBSSDFSChannelFlag{
			Channel: rest[0],
			FlagMap: width.U5(rest[1] & 0x1F),
		})
		rest = rest[2:]
	}
	return dfs, nil
}
