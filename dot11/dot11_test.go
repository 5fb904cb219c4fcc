package dot11_test

import (
	"testing"

	"github.com/markrepedersen/netparser/dot11"
	"github.com/markrepedersen/netparser/parse"
)

func mac(b byte) []byte { return []byte{b, b, b, b, b, b} }

// dataFrame builds an 802.11 Data frame with the given to_ds/from_ds bits
// and a fixed-size body.
func dataFrame(toDS, fromDS bool) []byte {
	b1 := byte(0x08) // subtype=0000, type=Data(10), version=00
	b2 := byte(0)
	if toDS {
		b2 |= 0x01
	}
	if fromDS {
		b2 |= 0x02
	}
	buf := []byte{b1, b2}
	buf = append(buf, 0x00, 0x00) // duration
	buf = append(buf, mac(0xA1)...)
	buf = append(buf, mac(0xA2)...)
	buf = append(buf, mac(0xA3)...)
	buf = append(buf, 0x00, 0x00)            // seq control
	buf = append(buf, []byte{1, 2, 3, 4}...) // body
	buf = append(buf, 0, 0, 0, 0)            // FCS
	return buf
}

func TestDecodeDot11DataToDS(t *testing.T) {
	c := parse.NewCursor(dataFrame(true, false))
	f, err := dot11.Decode(c)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if f.Addr1.Tag != dot11.AddrBSSID {
		t.Fatalf("Addr1 tag = %v, want BSSID", f.Addr1.Tag)
	}
	if f.Addr2 == nil || f.Addr2.Tag != dot11.AddrSource {
		t.Fatalf("Addr2 tag = %v, want Source", f.Addr2)
	}
	if f.Addr3 == nil || f.Addr3.Tag != dot11.AddrDestination {
		t.Fatalf("Addr3 tag = %v, want Destination", f.Addr3)
	}
	if f.Addr4 != nil {
		t.Fatalf("expected no Addr4 for to_ds=1/from_ds=0, got %v", f.Addr4)
	}
	if f.Body.Kind != dot11.BodyData {
		t.Fatalf("Body.Kind = %v, want BodyData", f.Body.Kind)
	}
}

// rtsFrame builds an 802.11 RTS control frame.
func rtsFrame() []byte {
	buf := []byte{0xB4, 0x00} // type=Control(01), subtype=RTS(1011)
	buf = append(buf, 0x00, 0x00)
	buf = append(buf, mac(0xB1)...) // receiver
	buf = append(buf, mac(0xB2)...) // transmitter
	buf = append(buf, 0, 0, 0, 0)   // FCS
	return buf
}

func TestDecodeDot11RTS(t *testing.T) {
	f, err := dot11.Decode(parse.NewCursor(rtsFrame()))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if f.Addr1.Tag != dot11.AddrReceiver {
		t.Fatalf("Addr1 tag = %v, want Receiver", f.Addr1.Tag)
	}
	if f.Addr2 == nil || f.Addr2.Tag != dot11.AddrTransmitter {
		t.Fatalf("Addr2 tag = %v, want Transmitter", f.Addr2)
	}
	if f.Addr3 != nil || f.SeqControl != nil || f.Addr4 != nil {
		t.Fatal("RTS frame must carry only addr1/addr2")
	}
	if f.Body.Kind != dot11.BodyEmpty {
		t.Fatalf("Body.Kind = %v, want BodyEmpty", f.Body.Kind)
	}
}

// protectedDataFrame builds a Protected 802.11 data frame: the frame-body
// region (everything between seq-control and FCS) is opaque encrypted
// bytes.
func protectedDataFrame(bodyLen int) []byte {
	buf := []byte{0x08, 0x40} // type=Data, protected bit set (bit6 of byte2)
	buf = append(buf, 0x00, 0x00)
	buf = append(buf, mac(0xC1)...)
	buf = append(buf, mac(0xC2)...)
	buf = append(buf, mac(0xC3)...)
	buf = append(buf, 0x00, 0x00)
	for i := 0; i < bodyLen; i++ {
		buf = append(buf, byte(i))
	}
	buf = append(buf, 0xAA, 0xBB, 0xCC, 0xDD) // FCS
	return buf
}

func TestDecodeDot11ProtectedData(t *testing.T) {
	f, err := dot11.Decode(parse.NewCursor(protectedDataFrame(16)))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if f.Body.Kind != dot11.BodyEncrypted {
		t.Fatalf("Body.Kind = %v, want BodyEncrypted", f.Body.Kind)
	}
	if got := f.Body.Encrypted.Len(); got != 16 {
		t.Fatalf("Encrypted body length = %d, want 16", got)
	}
	if f.FCS != 0xDDCCBBAA {
		t.Fatalf("FCS = %#x", f.FCS)
	}
}

// beaconFrame builds a Management Beacon frame carrying SSID "Test" and a
// SupportedRates IE with rates {1,2,5.5,11} Mbps.
func beaconFrame() []byte {
	buf := []byte{0x80, 0x00} // type=Management, subtype=Beacon(1000)
	buf = append(buf, 0x00, 0x00)
	buf = append(buf, mac(0xD1)...) // addr1 (dst)
	buf = append(buf, mac(0xD2)...) // addr2 (src)
	buf = append(buf, mac(0xD3)...) // addr3 (bssid)
	buf = append(buf, 0x00, 0x00)   // seq control

	var body []byte
	for i := 0; i < 8; i++ {
		body = append(body, byte(i)) // timestamp (le64)
	}
	body = append(body, 0x64, 0x00) // beacon_interval (le16) = 100
	body = append(body, 0x01, 0x04) // capability info (le16)

	// SSID IE
	body = append(body, 0, byte(len("Test")))
	body = append(body, []byte("Test")...)

	// SupportedRates IE: labels in 500kbps units for 1,2,5.5,11 Mbps.
	body = append(body, 1, 4)
	body = append(body, 0x82, 0x84, 0x0B, 0x96) // 2,4,11,22 with mandatory bit set on 2, 4 and 22

	buf = append(buf, body...)
	buf = append(buf, 0, 0, 0, 0) // FCS
	return buf
}

func TestDecodeDot11Beacon(t *testing.T) {
	f, err := dot11.Decode(parse.NewCursor(beaconFrame()))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if f.Body.Kind != dot11.BodyBeacon || f.Body.Beacon == nil {
		t.Fatalf("Body.Kind = %v, want BodyBeacon", f.Body.Kind)
	}
	if len(f.Body.Beacon.IEs) != 2 {
		t.Fatalf("IEs = %d, want 2", len(f.Body.Beacon.IEs))
	}
	ssid := f.Body.Beacon.IEs[0]
	if ssid.Kind != dot11.IEKindSSID || ssid.SSID != "Test" {
		t.Fatalf("IE[0] = %+v, want SSID \"Test\"", ssid)
	}
	rates := f.Body.Beacon.IEs[1]
	if rates.Kind != dot11.IEKindSupportedRates {
		t.Fatalf("IE[1].Kind = %v, want SupportedRates", rates.Kind)
	}
	if len(rates.SupportedRates) != 4 {
		t.Fatalf("SupportedRates len = %d, want 4", len(rates.SupportedRates))
	}
	want := []uint8{2, 4, 11, 22}
	for i, r := range rates.SupportedRates {
		if r.Label != want[i] {
			t.Fatalf("rate[%d].Label = %d, want %d", i, r.Label, want[i])
		}
	}
	if !rates.SupportedRates[0].Mandatory || !rates.SupportedRates[1].Mandatory {
		t.Fatal("expected first two rates to carry the mandatory bit")
	}
}

func TestDecodeDot11Truncated(t *testing.T) {
	buf := rtsFrame()
	buf = buf[:len(buf)-2] // cut into the FCS
	_, err := dot11.Decode(parse.NewCursor(buf))
	if err == nil {
		t.Fatal("expected decode failure on truncated 802.11 frame")
	}
}
