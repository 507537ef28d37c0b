package message

import "github.com/dnsscience/dog/internal/wire"

// SvcParam keys defined by RFC 9460 §14.3.2 that the renderer knows by
// name. The codec itself keeps every parameter, recognized or not, as a raw
// (Key, Value) pair; it does not decode values into typed fields.
const (
	SvcParamKeyMandatory     = 0
	SvcParamKeyALPN          = 1
	SvcParamKeyNoDefaultALPN = 2
	SvcParamKeyPort          = 3
	SvcParamKeyIPv4Hint      = 4
	SvcParamKeyECH           = 5
	SvcParamKeyIPv6Hint      = 6
)

// SvcParam is one key/value pair inside SVCB/HTTPS RDATA, with the value
// left as its raw wire bytes.
type SvcParam struct {
	Key   uint16
	Value []byte
}

func decodeSvcParams(c *wire.Cursor, limit int) ([]SvcParam, error) {
	var params []SvcParam
	for c.Offset() < limit {
		key, err := c.U16Within(limit)
		if err != nil {
			return nil, err
		}
		length, err := c.U16Within(limit)
		if err != nil {
			return nil, err
		}
		val, err := c.ReadNWithin(int(length), limit)
		if err != nil {
			return nil, err
		}
		params = append(params, SvcParam{Key: key, Value: val})
	}
	return params, nil
}

func encodeSvcParams(b *wire.Builder, params []SvcParam) error {
	for _, p := range params {
		if err := b.PutU16(p.Key); err != nil {
			return err
		}
		if err := b.PutU16(uint16(len(p.Value))); err != nil {
			return err
		}
		if err := b.PutBytes(p.Value); err != nil {
			return err
		}
	}
	return nil
}
