// Package ticket renders signed QR tickets for confirmed bookings.
package ticket

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
	"github.com/stpnv0/SeatReserve/internal/domain"
)

const defaultSize = 256

var ErrInvalidTicket = fmt.Errorf("%w: invalid ticket", domain.ErrInvalidRequest)

type Issuer struct {
	secret []byte
	size   int
}

func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret), size: defaultSize}
}

// Payload is the text encoded into the QR image:
// booking:<id>;event:<id>;signature:<hex hmac>.
func (i *Issuer) Payload(b *domain.Booking) string {
	return fmt.Sprintf("booking:%s;event:%s;signature:%s", b.ID, b.EventID, i.sign(b))
}

func (i *Issuer) QR(b *domain.Booking) ([]byte, error) {
	png, err := qrcode.Encode(i.Payload(b), qrcode.Medium, i.size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}

// BookingID extracts the booking id from a scanned payload without checking
// the signature.
func (i *Issuer) BookingID(payload string) (string, error) {
	fields, err := parse(payload)
	if err != nil {
		return "", err
	}
	return fields["booking"], nil
}

// Verify reports whether payload was issued for b.
func (i *Issuer) Verify(b *domain.Booking, payload string) bool {
	fields, err := parse(payload)
	if err != nil {
		return false
	}
	if fields["booking"] != b.ID || fields["event"] != b.EventID {
		return false
	}
	return hmac.Equal([]byte(fields["signature"]), []byte(i.sign(b)))
}

func (i *Issuer) sign(b *domain.Booking) string {
	h := hmac.New(sha256.New, i.secret)
	h.Write([]byte(b.ID + ":" + b.EventID + ":" + b.UserID))
	return hex.EncodeToString(h.Sum(nil))
}

func parse(payload string) (map[string]string, error) {
	parts := strings.Split(strings.TrimSpace(payload), ";")
	if len(parts) != 3 {
		return nil, ErrInvalidTicket
	}

	fields := make(map[string]string, len(parts))
	for idx, key := range []string{"booking", "event", "signature"} {
		value, ok := strings.CutPrefix(parts[idx], key+":")
		if !ok || value == "" {
			return nil, ErrInvalidTicket
		}
		fields[key] = value
	}
	return fields, nil
}
