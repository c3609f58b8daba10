package utils

import (
	"bytes"
	"crypto/subtle"
	"math/big"

	"golang.org/x/crypto/sha3"
)

// ConcatBytes concatenates two byte slices.
func ConcatBytes(a, b []byte) []byte {
	var buf bytes.Buffer
	buf.Write(a)
	buf.Write(b)
	return buf.Bytes()
}

// Sha3Hash converts a message to a hash value using SHA3-256.
func Sha3Hash(message []byte) ([]byte, error) {
	sha := sha3.New256()
	_, err := sha.Write(message)
	if err != nil {
		return nil, err
	}
	return sha.Sum(nil), nil
}

// ByteLen is the number of bytes needed to hold any residue of modulus.
func ByteLen(modulus *big.Int) int {
	return (modulus.BitLen() + 7) / 8
}

// FixedBytes encodes n big-endian, left padded to length bytes. Values that
// do not fit are returned unpadded.
func FixedBytes(n *big.Int, length int) []byte {
	b := n.Bytes()
	if len(b) >= length {
		return b
	}
	res := make([]byte, length)
	copy(res[length-len(b):], b)
	return res
}

// HashBigInt hashes n at the fixed width of modulus, prefixed with a domain
// tag so digests of different purposes never collide.
func HashBigInt(tag string, n, modulus *big.Int) ([]byte, error) {
	return Sha3Hash(ConcatBytes([]byte(tag), FixedBytes(n, ByteLen(modulus))))
}

// EqualDigest compares two digests in constant time.
func EqualDigest(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
