package hashtable

// hash mixes the four bytes of key through two accumulators, Fletcher style:
// the first folds in each byte with a multiply, the second sums the running
// first. The result depends on nothing but key.
func hash(key int32) uint32 {
	k := uint32(key)
	lo, hi := uint32(0x9e3779b9), uint32(0)
	for shift := 0; shift < 32; shift += 8 {
		lo = (lo ^ (k >> shift & 0xff)) * 0x01000193
		hi = hi*31 + lo
	}
	h := lo ^ hi<<7 ^ hi>>13
	h ^= h >> 16
	return h
}
