package types

// fnvPrime is the 32-bit FNV prime.
const fnvPrime = 0x01000193

// SymbolHash computes the 32-bit hash used to key every symbol table in the
// generator. It is an FNV-1a variant: the accumulator starts at 1 instead of
// the FNV offset basis, and each byte is folded in by multiplying first and
// XOR-ing second. The registry index reserves hash value 0 as its empty-slot
// sentinel, so a symbol whose text hashes to exactly 0 cannot be indexed.
func SymbolHash(text []byte) uint32 {
	h := uint32(1)
	for _, b := range text {
		h *= fnvPrime
		h ^= uint32(b)
	}
	return h
}

// SymbolHashString is SymbolHash for string input.
func SymbolHashString(text string) uint32 {
	h := uint32(1)
	for i := 0; i < len(text); i++ {
		h *= fnvPrime
		h ^= uint32(text[i])
	}
	return h
}
