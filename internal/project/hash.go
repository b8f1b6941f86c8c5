package project

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// Digest - фиксированный 256 битный хеш (совместим с source.File.Hash)
type Digest [32]byte

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// IsZero reports whether d was never computed.
func (d Digest) IsZero() bool {
	return d == Digest{}
}

// CacheKey строит ключ кэша: H(content || schema || tool).
// Смена схемы или версии компилятора делает старые записи недостижимыми.
func CacheKey(content Digest, schema uint16, tool string) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], schema)
	_, _ = h.Write(buf[:])
	_, _ = h.Write([]byte(tool))
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
