package sheader

import (
	"loco-savior/sawyer/lbytes"
)

func EncodeIdentity(identity Identity) []byte {
	bs := make([]byte, 0, IdentitySize)
	bs = append(bs, lbytes.EncodeUint32(identity.Flags)...)
	bs = append(bs, identity.Name[:]...)
	bs = append(bs, lbytes.EncodeUint32(identity.Checksum)...)
	return bs
}

func EncodePayload(payload Payload) []byte {
	bs := make([]byte, 0, PayloadSize)
	bs = append(bs, byte(payload.Encoding))
	bs = append(bs, lbytes.EncodeUint32(payload.Length)...)
	return bs
}

func Encode(identity Identity, payload Payload) []byte {
	bs := make([]byte, 0, Size)
	bs = append(bs, EncodeIdentity(identity)...)
	bs = append(bs, EncodePayload(payload)...)
	return bs
}
